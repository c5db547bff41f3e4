// Package flagx helps several config layers share os.Args without
// stepping on each other: each layer filters the arguments down to the
// flags it owns before parsing.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags named in allowed (and their values) from
// args. Both "-f value" and "-f=value" forms are recognized; a dash-prefixed
// token following an allowed flag is treated as the next flag, not a value.
func FilterArgs(args []string, allowed []string) []string {
	set := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		set[f] = struct{}{}
	}

	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := set[name]; ok {
				kept = append(kept, arg)
			}
			continue
		}

		if _, ok := set[arg]; ok {
			kept = append(kept, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				kept = append(kept, args[i+1])
				i++
			}
		}
	}

	return kept
}

// JsonConfigFlags returns the config file path passed via -c or -config,
// or "" when neither flag is present. Other flags are left for their
// owning layers to parse.
func JsonConfigFlags() string {
	var path string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}
