package pubmedcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"biolab/internal/clibase"
	"biolab/internal/cliutil"
	"biolab/internal/output"
	"biolab/internal/vcf"
)

var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatYAML}

// Default result caps per mode.
const (
	DefaultTermMax = 5
	DefaultVCFMax  = 3
)

type Options struct {
	clibase.Common

	// NCBI
	Email   string
	APIKey  string
	BaseURL string

	// Modes
	Term string
	VCF  string
	Gene string
	Max  int

	Out string

	Set map[string]bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --term 'TP53 AND cancer' [--max 5] [--out pubmed.xml]\n", name)
		_, _ = fmt.Fprintf(out, "  %s --vcf variants.vcf [--gene TP53] [--max 3] [--out variants.txt]\n", name)

		_, _ = fmt.Fprintln(out, "\nSearch:")
		_, _ = fmt.Fprintln(out, "      --term string           PubMed query; fetches the article XML")
		_, _ = fmt.Fprintln(out, "      --vcf file              One PubMed search per VCF variant (.gz ok)")
		_, _ = fmt.Fprintf(out, "      --gene string           Gene added to positional variant queries [%s]\n", def("gene"))
		_, _ = fmt.Fprintf(out, "      --max int               Max PMIDs per search [term %d, vcf %d]\n", DefaultTermMax, DefaultVCFMax)
		_, _ = fmt.Fprintln(out, "      --out file              Write results to a file instead of STDOUT")

		_, _ = fmt.Fprintln(out, "\nNCBI:")
		_, _ = fmt.Fprintln(out, "      --email string          Contact e-mail sent to NCBI (or ncbi.email)")
		_, _ = fmt.Fprintln(out, "      --api-key string        NCBI API key")
	})
	return fs
}

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "labpubmed", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "PubMed search by term, or per variant from a VCF.")
		_, _ = fmt.Fprintln(w, "\nExamples:")
		_, _ = fmt.Fprintln(w, "  labpubmed --term \"TP53 AND cancer\" --out pubmed_tp53.xml")
		_, _ = fmt.Fprintln(w, "  labpubmed --vcf tp53_demo.vcf --gene TP53 --out variants.txt")
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
	fs.StringVar(&o.Term, "term", "", "PubMed query")
	fs.StringVar(&o.VCF, "vcf", "", "VCF file")
	fs.StringVar(&o.Gene, "gene", vcf.DefaultGene, "gene for positional queries")
	fs.IntVar(&o.Max, "max", 0, "max PMIDs per search")
	fs.StringVar(&o.Out, "out", "", "output file")

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
	case o.Term != "" && o.VCF != "":
		return o, errors.New("--term conflicts with --vcf")
	case o.Term == "" && o.VCF == "":
		return o, errors.New("provide --term or --vcf")
	case o.Term != "" && c.Output != output.FormatText:
		return o, errors.New("--output applies to --vcf reports only; --term writes PubMed XML")
	}
	if !o.Set["max"] {
		o.Max = DefaultVCFMax
		if o.Term != "" {
			o.Max = DefaultTermMax
		}
	}
	if o.Max < 1 {
		return o, errors.New("--max must be ≥ 1")
	}
	return o, nil
}
