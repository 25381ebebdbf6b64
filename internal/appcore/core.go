// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"biolab/internal/clibase"
	"biolab/internal/cmdutil"
	"biolab/internal/config"
	"biolab/internal/version"
	"biolab/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK          = 0
	ExitNoResult    = 1
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// Flush flushes outw and returns code, or ExitIO when the flush fails for a
// reason other than a closed downstream pipe.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return code
}

// ParseResult settles the common outcomes of a tool's ParseArgs: help,
// examples, usage errors and --version. When done is true the caller returns
// code immediately.
func ParseResult(fs *flag.FlagSet, name string, err error, showVersion bool, outw *bufio.Writer, stderr io.Writer, examples func(io.Writer)) (code int, done bool) {
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		examples(outw)
		return Flush(outw, stderr, ExitOK), true
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr, ExitOK), true
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return Flush(outw, stderr, ExitUsage), true
	case showVersion:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return Flush(outw, stderr, ExitOK), true
	}
	return 0, false
}

// Env is the per-run environment: a context carrying the logger and the
// loaded settings file.
type Env struct {
	Ctx    context.Context
	Config config.Config
	closer io.Closer
}

// Setup loads --config and builds the logger. Explicit --log-* flags win over
// the settings file.
func Setup(ctx context.Context, name string, stderr io.Writer, c clibase.Common, set map[string]bool) (Env, error) {
	cfg, err := config.Load(ctx, c.ConfigFile)
	if err != nil {
		return Env{}, fmt.Errorf("config %s: %w", c.ConfigFile, err)
	}
	lo := cmdutil.LogOptions{Level: c.LogLevel, File: c.LogFile, Format: c.LogFormat, Quiet: c.Quiet}
	if !set["log-level"] && cfg.Logging.Level != nil {
		lo.Level = *cfg.Logging.Level
	}
	if !set["log-file"] && cfg.Logging.File != "" {
		lo.File = cfg.Logging.File
	}
	if !set["log-format"] && cfg.Logging.Format != "" {
		lo.Format = cfg.Logging.Format
	}
	logger, closer, err := cmdutil.NewLogger(stderr, lo)
	if err != nil {
		return Env{}, err
	}
	return Env{
		Ctx:    cmdutil.WithLogger(ctx, logger, "tool", name),
		Config: cfg,
		closer: closer,
	}, nil
}

// Close releases the log file, if any.
func (e Env) Close() {
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

// Interrupted maps a canceled run to ExitInterrupted.
func Interrupted(ctx context.Context, code int) int {
	if ctx.Err() != nil && code != ExitOK {
		return ExitInterrupted
	}
	return code
}
