package fetchcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"biolab/internal/clibase"
	"biolab/internal/cliutil"
	"biolab/internal/output"
)

var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatYAML}

type Options struct {
	clibase.Common

	// NCBI
	Email   string
	APIKey  string
	BaseURL string

	// Selection
	Accession string
	Query     string
	DB        string
	RetMax    int

	Out string

	Set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --email you@example.org --accession NM_000546 --out data/nm000546.fa\n", name)
		_, _ = fmt.Fprintf(out, "  %s --email you@example.org --query 'TP53[Gene] AND Homo sapiens[Organism]' --out tp53.fa\n", name)

		_, _ = fmt.Fprintln(out, "\nNCBI:")
		_, _ = fmt.Fprintln(out, "      --email string          Contact e-mail sent to NCBI [required, or ncbi.email]")
		_, _ = fmt.Fprintln(out, "      --api-key string        NCBI API key (raises the rate limit to 10 req/s)")

		_, _ = fmt.Fprintln(out, "\nSelection:")
		_, _ = fmt.Fprintln(out, "  -a, --accession string      Fetch one accession")
		_, _ = fmt.Fprintln(out, "  -Q, --query string          Entrez search term")
		_, _ = fmt.Fprintf(out, "      --db string             nuccore | protein [%s]\n", def("db"))
		_, _ = fmt.Fprintf(out, "      --retmax int            Max IDs taken from the search [%s]\n", def("retmax"))
		_, _ = fmt.Fprintln(out, "      --out file              FASTA destination; parent directories are created [required]")
	})
	return fs
}

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "labfetch", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Download FASTA from NCBI and print the GC fraction of each record.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  labfetch \\")
		_, _ = fmt.Fprintln(w, "    --email student@example.com \\")
		_, _ = fmt.Fprintln(w, "    --query \"TP53[Gene] AND Homo sapiens[Organism]\" \\")
		_, _ = fmt.Fprintln(w, "    --retmax 3 \\")
		_, _ = fmt.Fprintln(w, "    --out data/work/lab01/my_tp53.fa")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, output.FormatText, Formats)

	fs.StringVar(&o.Email, "email", "", "contact e-mail for NCBI")
	fs.StringVar(&o.APIKey, "api-key", "", "NCBI API key")
	fs.StringVar(&o.BaseURL, "base-url", "", "E-utilities base URL")
	fs.StringVar(&o.Accession, "accession", "", "accession to fetch")
	fs.StringVar(&o.Accession, "a", "", "alias of --accession")
	fs.StringVar(&o.Query, "query", "", "Entrez search term")
	fs.StringVar(&o.Query, "Q", "", "alias of --query")
	fs.StringVar(&o.DB, "db", "nuccore", "nuccore | protein [nuccore]")
	fs.IntVar(&o.RetMax, "retmax", 3, "max IDs from search [3]")
	fs.StringVar(&o.Out, "out", "", "FASTA destination")

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

	switch {
	case len(c.Inputs) > 0:
		return o, fmt.Errorf("unexpected arguments: %v", c.Inputs)
	case o.Accession != "" && o.Query != "":
		return o, errors.New("--accession conflicts with --query")
	case o.Accession == "" && o.Query == "":
		return o, errors.New("provide --accession or --query")
	case o.Out == "":
		return o, errors.New("--out is required")
	}
	switch o.DB {
	case "nuccore", "protein":
	default:
		return o, fmt.Errorf("invalid --db %q (want nuccore|protein)", o.DB)
	}
	if o.RetMax < 1 {
		return o, errors.New("--retmax must be ≥ 1")
	}
	return o, nil
}
