// Package flagx lets independent loaders pick their own flags out of the
// command line without tripping over each other's flag sets.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns only the allowed flags (and their values) from args.
//
// Both "-f value" and "-f=value" forms are recognised. A token following an
// allowed flag is taken as its value unless it starts with '-'.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// LookupString returns the value of the last occurrence of any of names in
// args, or "" if none is present. Names are given with their leading dash.
func LookupString(args []string, names ...string) string {
	var value string

	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, strings.TrimLeft(n, "-"), "", "")
	}
	_ = fs.Parse(FilterArgs(args, names))

	return value
}

// ConfigPath extracts the JSON config file path given with -c or -config.
func ConfigPath(args []string) string {
	return LookupString(args, "-c", "-config")
}

// EnvFilePath extracts the dotenv file path given with -env.
func EnvFilePath(args []string) string {
	return LookupString(args, "-env")
}
