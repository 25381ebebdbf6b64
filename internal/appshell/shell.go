// Package appshell runs a tool's RunContext as a process entry point.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"biolab/internal/appcore"
)

// RunFunc is the signature every tool's RunContext satisfies.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Exec runs fn under ctx and normalizes the exit code: a cancelled run
// never reports success.
func Exec(ctx context.Context, fn RunFunc, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := fn(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitInterrupted
	}
	return code
}

func Main(fn RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Exec(ctx, fn, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
