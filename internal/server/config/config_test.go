package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
	assert.Empty(t, cfg.JWTSecret, "the signing secret must not have a default")
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	os.Args = []string{"server"}

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrNoJWTSecret)
}

func TestLoadConfig_SecretFromEnv(t *testing.T) {
	os.Args = []string{"server"}
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_ADDRESS", ":9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, ":9090", cfg.EndpointAddrHTTP)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	os.Args = []string{"server", "-s", "flag-secret", "-t", "30"}
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "flag-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{
		"endpoint_addr_http": ":7070",
		"database_dsn": "postgres://u:p@localhost:5432/db",
		"jwt_secret": "json-secret",
		"token_validity_duration": "45m",
		"s3_bucket": "pics",
		"s3_region": "sa-east-1",
		"s3_root_user": "root",
		"s3_root_password": "pwd",
		"s3_base_endpoint": "http://localhost:9000/"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	os.Args = []string{"server", "-c", path}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.EndpointAddrHTTP)
	assert.Equal(t, "json-secret", cfg.JWTSecret)
	assert.Equal(t, 45*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "pics", cfg.S3Bucket)
}
