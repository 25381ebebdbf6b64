// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"biolab/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific sections; the shared output/config/misc blocks follow.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – bioinformatics lab toolkit\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		if f := fs.Lookup("output"); f != nil {
			fmt.Fprintf(out, "  -o, --output string         %s\n", f.Usage)
		}
		fmt.Fprintf(out, "      --no-header             Suppress header/banner lines [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nConfig & logging:")
		fmt.Fprintln(out, "      --config file           YAML settings (flags override it)")
		fmt.Fprintf(out, "      --log-level int         0=error 1=warn 2=info 3=debug [%s]\n", def("log-level"))
		fmt.Fprintln(out, "      --log-file file         Write logs to a file instead of stderr")
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help")
	}
}
