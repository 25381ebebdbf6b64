package aligncli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"biolab-core/align"
	"biolab/internal/clibase"
	"biolab/internal/cliutil"
	"biolab/internal/config"
	"biolab/internal/output"
)

// Formats accepted by --output.
var Formats = []string{output.FormatText, output.FormatJSON, output.FormatYAML, output.FormatFASTA}

type Options struct {
	clibase.Common

	// Input
	FASTA  string
	I1, I2 int

	// Alignment
	Mode       align.Mode
	Match      int
	Mismatch   int
	Gap        int
	IgnoreCase bool
	RevComp    bool
	Verify     bool

	// Rendering
	Pretty bool
	Width  int

	// Set records the flags given explicitly on the command line.
	Set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] seqs.fa\n", name)
		_, _ = fmt.Fprintf(out, "  %s --mode local --match 2 --mismatch -1 --gap -2 seqs.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  -f, --fasta file            Multi-FASTA with at least two records ('-' for STDIN)")
		_, _ = fmt.Fprintf(out, "      --i1 int                0-based index of the first record [%s]\n", def("i1"))
		_, _ = fmt.Fprintf(out, "      --i2 int                0-based index of the second record [%s]\n", def("i2"))

		_, _ = fmt.Fprintln(out, "\nAlignment:")
		_, _ = fmt.Fprintf(out, "  -m, --mode string           global (Needleman-Wunsch) | local (Smith-Waterman) [%s]\n", def("mode"))
		_, _ = fmt.Fprintln(out, "      --match int             Match score [global 1, local 3]")
		_, _ = fmt.Fprintln(out, "      --mismatch int          Mismatch score [global -1, local -3]")
		_, _ = fmt.Fprintln(out, "      --gap int               Linear gap score [-2]")
		_, _ = fmt.Fprintf(out, "  -i, --ignore-case           Upper-case both sequences before aligning [%s]\n", def("ignore-case"))
		_, _ = fmt.Fprintf(out, "      --revcomp               Align against the reverse complement of the second record [%s]\n", def("revcomp"))
		_, _ = fmt.Fprintf(out, "      --verify                Re-score the aligned rows and fail on disagreement [%s]\n", def("verify"))

		_, _ = fmt.Fprintln(out, "\nRendering:")
		_, _ = fmt.Fprintf(out, "      --pretty                Append a wrapped block with match bars (text) [%s]\n", def("pretty"))
		_, _ = fmt.Fprintf(out, "  -w, --width int             Columns per pretty block / FASTA line [%s]\n", def("width"))
	})
	return fs
}

// PrintExamples prints a short quickstart for labalign.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "labalign", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Pairwise alignment of two records from one FASTA file.")
		_, _ = fmt.Fprintln(w, "\nGlobal (Needleman-Wunsch), first two records:")
		_, _ = fmt.Fprintln(w, "  labalign data/sample/tp53_dna_multi.fasta")
		_, _ = fmt.Fprintln(w, "\nLocal (Smith-Waterman), records 0 and 2, with match bars:")
		_, _ = fmt.Fprintln(w, "  labalign --mode local --i2 2 --pretty data/sample/tp53_dna_multi.fasta")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool
	var mode string

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, output.FormatText, Formats)

	fs.StringVar(&o.FASTA, "fasta", "", "multi-FASTA input")
	fs.StringVar(&o.FASTA, "f", "", "alias of --fasta")
	fs.IntVar(&o.I1, "i1", 0, "index of the first record [0]")
	fs.IntVar(&o.I2, "i2", 1, "index of the second record [1]")

	fs.StringVar(&mode, "mode", "global", "global | local [global]")
	fs.StringVar(&mode, "m", "global", "alias of --mode")
	fs.IntVar(&o.Match, "match", 0, "match score")
	fs.IntVar(&o.Mismatch, "mismatch", 0, "mismatch score")
	fs.IntVar(&o.Gap, "gap", 0, "gap score")
	fs.BoolVar(&o.IgnoreCase, "ignore-case", false, "upper-case inputs [false]")
	fs.BoolVar(&o.IgnoreCase, "i", false, "alias of --ignore-case")
	fs.BoolVar(&o.RevComp, "revcomp", false, "reverse-complement the second record [false]")
	fs.BoolVar(&o.Verify, "verify", false, "re-score aligned rows [false]")

	fs.BoolVar(&o.Pretty, "pretty", false, "pretty ASCII block (text) [false]")
	fs.IntVar(&o.Width, "width", 60, "columns per block [60]")
	fs.IntVar(&o.Width, "w", 60, "alias of --width")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}
	if err := clibase.AfterParse(&c, noHeader, posArgs, Formats); err != nil {
		return o, err
	}
	o.Common = c
	o.Set = clibase.SetFlags(fs)
	// Short aliases share storage with their long flags.
	for short, long := range map[string]string{"m": "mode", "f": "fasta", "i": "ignore-case", "w": "width"} {
		if o.Set[short] {
			o.Set[long] = true
		}
	}

	m, err := align.ParseMode(mode)
	if err != nil {
		return o, err
	}
	o.Mode = m

	switch {
	case o.FASTA != "" && len(c.Inputs) > 0:
		return o, errors.New("give the FASTA file either with --fasta or as an argument, not both")
	case o.FASTA == "" && len(c.Inputs) == 1:
		o.FASTA = c.Inputs[0]
	case o.FASTA == "" && len(c.Inputs) > 1:
		return o, errors.New("exactly one FASTA file is expected")
	case o.FASTA == "":
		return o, errors.New("a FASTA file is required (--fasta or positional)")
	}
	if o.I1 < 0 || o.I2 < 0 {
		return o, errors.New("--i1/--i2 must be ≥ 0")
	}
	if o.Width < 0 {
		return o, errors.New("--width must be ≥ 0")
	}
	return o, nil
}

// Scoring resolves the scheme: explicit flags, then the settings file, then
// the built-in default for the mode.
func (o Options) Scoring(cfg config.Config) align.Scoring {
	sc := cfg.ScoringFor(o.Mode)
	if o.Set["match"] {
		sc.Match = o.Match
	}
	if o.Set["mismatch"] {
		sc.Mismatch = o.Mismatch
	}
	if o.Set["gap"] {
		sc.Gap = o.Gap
	}
	return sc
}
