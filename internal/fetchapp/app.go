// internal/fetchapp/app.go
package fetchapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"biolab-core/fasta"
	"biolab/internal/appcore"
	"biolab/internal/cliutil"
	"biolab/internal/entrez"
	"biolab/internal/fetchcli"
	"biolab/internal/output"
	"biolab/internal/writers"
	"cloudeng.io/logging/ctxlog"
)

const name = "labfetch"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := fetchcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := fetchcli.ParseArgs(fs, argv)
	if code, done := appcore.ParseResult(fs, name, err, opts.Version, outw, stderr, fetchcli.PrintExamples); done {
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

	eo := appcore.EntrezOptions(env.Config.NCBI, opts.Email, opts.APIKey, opts.BaseURL)
	if eo.Email == "" {
		fmt.Fprintln(stderr, "error: --email is required (or set ncbi.email in --config)")
		return appcore.ExitUsage
	}
	client := entrez.New(eo)

	ids := []string{opts.Accession}
	if opts.Query != "" {
		logger.Info("searching", "db", opts.DB, "term", opts.Query, "retmax", opts.RetMax)
		ids, err = client.ESearch(ctx, opts.DB, opts.Query, opts.RetMax)
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return appcore.Interrupted(ctx, appcore.ExitIO)
		}
	}
	if len(ids) == 0 {
		fmt.Fprintln(stderr, "no IDs found")
		return appcore.ExitNoResult
	}

	logger.Info("downloading", "ids", len(ids), "out", opts.Out)
	data, err := client.EFetch(ctx, entrez.FetchRequest{DB: opts.DB, IDs: ids, RetType: "fasta", RetMode: "text"})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.Interrupted(ctx, appcore.ExitIO)
	}
	if err := save(opts.Out, data); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}

	in, done := writers.StartGCWriter(outw, opts.Output, 64)
	n := 0
	err = fasta.StreamPathCtx(ctx, opts.Out, func(r fasta.Record) error {
		n++
		in <- output.NewGCRecord(r.ID, r.Seq)
		return nil
	})
	close(in)
	werr := <-done
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.Interrupted(ctx, appcore.ExitIO)
	}
	if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return appcore.ExitIO
	}
	logger.Info("wrote records", "count", n, "out", opts.Out)
	return appcore.Flush(outw, stderr, appcore.ExitOK)
}

func save(path string, data []byte) error {
	f, err := cliutil.CreateFile(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
