// internal/qcapp/app.go
package qcapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"biolab/internal/appcore"
	"biolab/internal/cliutil"
	"biolab/internal/cmdutil"
	"biolab/internal/fastq"
	"biolab/internal/output"
	"biolab/internal/qccli"
	"biolab/internal/qcplot"
	"biolab/internal/writers"
	"cloudeng.io/logging/ctxlog"
)

const name = "labqc"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// failureCode is ExitNoResult when every failure is an empty input and
// ExitIO otherwise.
func failureCode(err error) int {
	errs := []error{err}
	if m, ok := err.(interface{ Unwrap() []error }); ok {
		errs = m.Unwrap()
	}
	for _, e := range errs {
		if !errors.Is(e, fastq.ErrEmpty) {
			return appcore.ExitIO
		}
	}
	return appcore.ExitNoResult
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := qccli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := qccli.ParseArgs(fs, argv)
	if code, done := appcore.ParseResult(fs, name, err, opts.Version, outw, stderr, qccli.PrintExamples); done {
		return code
	}
	if err := cliutil.RequireFiles(opts.Inputs); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}

	env, err := appcore.Setup(parent, name, stderr, opts.Common, opts.Set)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	defer env.Close()
	ctx := env.Ctx
	logger := ctxlog.Logger(ctx)

	keepDist := opts.Plot != ""
	reports, err := cmdutil.RunIndexed(ctx, opts.Threads, len(opts.Inputs),
		func(ctx context.Context, i int) (output.QCReport, error) {
			path := opts.Inputs[i]
			s, err := fastq.Compute(ctx, path, keepDist)
			if err != nil {
				return output.QCReport{}, err
			}
			logger.Info("computed", "file", path, "reads", s.Reads)
			return output.QCReport{File: path, Stats: s}, nil
		})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.Interrupted(ctx, failureCode(err))
	}

	if keepDist {
		var pooled fastq.Stats
		for _, r := range reports {
			pooled.Merge(r.Stats)
		}
		if err := writePlot(opts.Plot, pooled, opts.Bins); err != nil {
			fmt.Fprintln(stderr, "error: plot:", err)
			return appcore.ExitIO
		}
		logger.Info("saved plot", "file", opts.Plot)
	}

	if opts.Out != "" {
		f, err := cliutil.CreateFile(opts.Out)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return appcore.ExitIO
		}
		bw := bufio.NewWriter(f)
		err = writers.Write(writers.KindQC, opts.Output, bw, reports)
		if err == nil {
			err = bw.Flush()
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return appcore.ExitIO
		}
		logger.Info("saved report", "file", opts.Out)
		return appcore.ExitOK
	}
	if err := writers.Write(writers.KindQC, opts.Output, outw, reports); err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	return appcore.Flush(outw, stderr, appcore.ExitOK)
}

func writePlot(path string, s fastq.Stats, bins int) error {
	f, err := cliutil.CreateFile(path)
	if err != nil {
		return err
	}
	if err := qcplot.Write(f, s, bins); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
