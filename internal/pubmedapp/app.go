// internal/pubmedapp/app.go
package pubmedapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"biolab-core/fasta"
	"biolab/internal/appcore"
	"biolab/internal/cliutil"
	"biolab/internal/entrez"
	"biolab/internal/pubmedcli"
	"biolab/internal/vcf"
	"biolab/internal/writers"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

const name = "labpubmed"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := pubmedcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := pubmedcli.ParseArgs(fs, argv)
	if code, done := appcore.ParseResult(fs, name, err, opts.Version, outw, stderr, pubmedcli.PrintExamples); done {
		return code
	}

	if opts.VCF != "" {
		if err := cliutil.RequireFiles([]string{opts.VCF}); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return appcore.ExitUsage
		}
	}

	env, err := appcore.Setup(parent, name, stderr, opts.Common, opts.Set)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	defer env.Close()

	client := entrez.New(appcore.EntrezOptions(env.Config.NCBI, opts.Email, opts.APIKey, opts.BaseURL))
	var code int
	if opts.Term != "" {
		code = runTerm(env.Ctx, client, opts, outw, stderr)
	} else {
		code = runVCF(env.Ctx, client, opts, outw, stderr)
	}
	if code != appcore.ExitOK {
		_ = outw.Flush()
		return appcore.Interrupted(env.Ctx, code)
	}
	return appcore.Flush(outw, stderr, code)
}

// writeOut sends fn's output to path when set, else to stdout.
func writeOut(path string, stdout io.Writer, fn func(io.Writer) error) error {
	if path == "" {
		return fn(stdout)
	}
	f, err := cliutil.CreateFile(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = fn(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func runTerm(ctx context.Context, client *entrez.Client, opts pubmedcli.Options, outw io.Writer, stderr io.Writer) int {
	logger := ctxlog.Logger(ctx)
	ids, err := client.ESearch(ctx, "pubmed", opts.Term, opts.Max)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	if len(ids) == 0 {
		fmt.Fprintln(stderr, "no PMIDs found")
		return appcore.ExitNoResult
	}
	logger.Info("found", "pmids", ids)
	xml, err := client.EFetch(ctx, entrez.FetchRequest{DB: "pubmed", IDs: ids, RetMode: "xml"})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	err = writeOut(opts.Out, outw, func(w io.Writer) error {
		_, err := w.Write(xml)
		return err
	})
	if err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	return appcore.ExitOK
}

func runVCF(ctx context.Context, client *entrez.Client, opts pubmedcli.Options, outw io.Writer, stderr io.Writer) int {
	logger := ctxlog.Logger(ctx)
	rc, err := fasta.Open(opts.VCF)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	variants, err := vcf.Parse(rc, opts.Gene)
	rc.Close()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s: %v\n", opts.VCF, err)
		return appcore.ExitIO
	}
	if len(variants) == 0 {
		fmt.Fprintln(stderr, "no variants found")
		return appcore.ExitNoResult
	}

	var errs errors.M
	hits := make([]vcf.Hits, 0, len(variants))
	for _, v := range variants {
		ids, err := client.ESearch(ctx, "pubmed", v.Query, opts.Max)
		if err != nil {
			if ctx.Err() != nil {
				return appcore.ExitInterrupted
			}
			errs.Append(fmt.Errorf("variant %s (%s:%s): %w", v.ID, v.Chrom, v.Pos, err))
		}
		logger.Debug("variant searched", "query", v.Query, "pmids", len(ids))
		hits = append(hits, vcf.Hits{Variant: v, PMIDs: ids})
	}

	err = writeOut(opts.Out, outw, func(w io.Writer) error {
		return writers.Write(writers.KindVariant, opts.Output, w, hits)
	})
	if err != nil && !writers.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	if err := errs.Err(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitIO
	}
	logger.Info("searched variants", "count", len(hits))
	return appcore.ExitOK
}
