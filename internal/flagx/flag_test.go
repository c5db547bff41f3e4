package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-c", "conf.json", "-a", ":8080"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=alt.json", "-d", "postgres://..."},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=alt.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-x", "1", "-y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "dash token after flag is not a value",
			args:    []string{"-c", "-d", "dsn"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "several owned flags keep order",
			args:    []string{"-a", ":8080", "-s", "secret", "-other", "x"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", ":8080", "-s", "secret"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "empty input",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"server", "-c", "/etc/app/conf.json"}
		assert.Equal(t, "/etc/app/conf.json", JsonConfigFlags())
	})

	t.Run("long flag", func(t *testing.T) {
		os.Args = []string{"server", "-config", "/etc/app/conf.json"}
		assert.Equal(t, "/etc/app/conf.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"server", "-a", ":8080"}
		assert.Empty(t, JsonConfigFlags())
	})
}
