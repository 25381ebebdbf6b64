package qccli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"biolab/internal/clibase"
	"biolab/internal/cliutil"
	"biolab/internal/output"
	"biolab/internal/qcplot"
)

var Formats = []string{output.FormatText, output.FormatJSON, output.FormatYAML}

type Options struct {
	clibase.Common

	Out     string
	Plot    string
	Bins    int
	Threads int

	Set map[string]bool
}

// sliceValue appends each value to a *[]string (for --fastq)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}

func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] reads.fastq[.gz] ...\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --fastq file            FASTQ file (repeatable) or '-' for STDIN; positionals also accepted")

		_, _ = fmt.Fprintln(out, "\nReport:")
		_, _ = fmt.Fprintln(out, "      --out file              Write the report to a file instead of STDOUT")
		_, _ = fmt.Fprintln(out, "      --plot file.png         Read-length and Phred histograms (all inputs pooled)")
		_, _ = fmt.Fprintf(out, "      --bins int              Histogram bins [%s]\n", def("bins"))
		_, _ = fmt.Fprintf(out, "  -t, --threads int           Files processed concurrently (0=all CPUs) [%s]\n", def("threads"))
	})
	return fs
}

func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "labqc", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "FASTQ quality summary: reads, mean length, N rate, mean Phred.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  labqc --out qc_report.txt --plot qc_plot.png sample_R1.fastq.gz sample_R2.fastq.gz")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool
	var files []string

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, output.FormatText, Formats)

	fs.Var(&sliceValue{dst: &files}, "fastq", "FASTQ file(s) (repeatable or '-')")
	fs.StringVar(&o.Out, "out", "", "report destination")
	fs.StringVar(&o.Plot, "plot", "", "histogram PNG destination")
	fs.IntVar(&o.Bins, "bins", qcplot.DefaultBins, "histogram bins")
	fs.IntVar(&o.Threads, "threads", 0, "concurrent files (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

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
	c.Inputs = files
	if err := clibase.AfterParse(&c, noHeader, posArgs, Formats); err != nil {
		return o, err
	}
	o.Common = c
	o.Set = clibase.SetFlags(fs)

	if len(c.Inputs) == 0 {
		return o, errors.New("at least one FASTQ file is required")
	}
	if o.Threads < 0 {
		return o, errors.New("--threads must be ≥ 0")
	}
	if o.Bins < 1 {
		return o, errors.New("--bins must be ≥ 1")
	}
	return o, nil
}
