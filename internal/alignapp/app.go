// internal/alignapp/app.go
package alignapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"biolab-core/align"
	"biolab-core/nucl"
	"biolab/internal/aligncli"
	"biolab/internal/appcore"
	"biolab/internal/output"
	"biolab/internal/pretty"
	"biolab/internal/seqsource"
	"biolab/internal/writers"
	"cloudeng.io/logging/ctxlog"
)

const name = "labalign"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := aligncli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := aligncli.ParseArgs(fs, argv)
	if code, done := appcore.ParseResult(fs, name, err, opts.Version, outw, stderr, aligncli.PrintExamples); done {
		return code
	}

	env, err := appcore.Setup(parent, name, stderr, opts.Common, opts.Set)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	defer env.Close()
	ctx := env.Ctx
	logger := ctxlog.Logger(ctx)

	pair, err := seqsource.LoadPair(ctx, opts.FASTA, opts.I1, opts.I2)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, seqsource.ErrTooFewRecords) || errors.Is(err, seqsource.ErrIndexOutOfRange) {
			return appcore.ExitUsage
		}
		return appcore.Interrupted(ctx, appcore.ExitIO)
	}
	if opts.IgnoreCase {
		pair.Seq1, pair.Seq2 = strings.ToUpper(pair.Seq1), strings.ToUpper(pair.Seq2)
	}
	if opts.RevComp {
		pair.Seq2 = nucl.RevComp(pair.Seq2)
		logger.Debug("reverse-complemented", "id", pair.ID2)
	}

	sc := opts.Scoring(env.Config)
	logger.Info("aligning", "mode", opts.Mode.String(), "scoring", sc.String(),
		"id1", pair.ID1, "len1", len(pair.Seq1), "id2", pair.ID2, "len2", len(pair.Seq2))
	res := align.Align(opts.Mode, pair.Seq1, pair.Seq2, sc)

	if opts.Verify {
		got, err := align.ScoreAlignment(res.Aligned1, res.Aligned2, sc)
		if err != nil || got != res.Score {
			fmt.Fprintf(stderr, "error: verification failed: rescored %d, reported %d (%v)\n", got, res.Score, err)
			return appcore.ExitIO
		}
		logger.Info("verified", "score", got)
	}

	popt := pretty.DefaultOptions
	popt.Width = opts.Width
	payload := writers.Alignment{
		Alignment: output.Alignment{
			ID1: pair.ID1, ID2: pair.ID2,
			Mode: opts.Mode, Scoring: sc, Result: res,
		},
		Header:        opts.Header,
		Pretty:        opts.Pretty,
		PrettyOptions: popt,
		FASTAWidth:    opts.Width,
	}
	if err := writers.Write(writers.KindAlignment, opts.Output, outw, payload); err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	return appcore.Flush(outw, stderr, appcore.ExitOK)
}
