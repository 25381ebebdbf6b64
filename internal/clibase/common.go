// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"biolab/internal/cliutil"
)

// Common holds CLI fields shared by every lab tool.
type Common struct {
	// Input
	Inputs []string

	// Output
	Output string
	Header bool

	// Config / logging
	ConfigFile string
	LogLevel   int
	LogFile    string
	LogFormat  string

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the "no-header"
// bool that AfterParse folds into Common.Header.
func Register(fs *flag.FlagSet, c *Common, defaultOutput string, formats []string) *bool {
	usage := fmt.Sprintf("output: %s [%s]", strings.Join(formats, " | "), defaultOutput)
	fs.StringVar(&c.Output, "output", defaultOutput, usage)
	fs.StringVar(&c.Output, "o", defaultOutput, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header/banner lines [false]")

	fs.StringVar(&c.ConfigFile, "config", "", "YAML settings file")
	fs.IntVar(&c.LogLevel, "log-level", 1, "log level 0=error 1=warn 2=info 3=debug [1]")
	fs.StringVar(&c.LogFile, "log-file", "", "write logs to FILE instead of stderr")
	fs.StringVar(&c.LogFormat, "log-format", "text", "log format: text | json [text]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	return &noHeader
}

// AfterParse finalizes the header flag, expands positionals and runs shared
// validation against the tool's accepted formats.
func AfterParse(c *Common, noHeader *bool, posArgs []string, formats []string) error {
	c.Header = !*noHeader
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}
	return Validate(c, formats)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common, formats []string) error {
	if !slices.Contains(formats, c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, "|"))
	}
	if c.LogLevel < 0 || c.LogLevel > 3 {
		return errors.New("--log-level must be between 0 and 3")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	return nil
}

// SetFlags reports which flags were given explicitly on the command line.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
