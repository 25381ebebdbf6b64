// internal/cmdutil/log.go
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cloudcmd "cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
)

// LogOptions mirrors the --log-* flags shared by every lab tool.
// Level: 0=error, 1=warn, 2=info, 3=debug.
type LogOptions struct {
	Level  int
	File   string
	Format string // text | json
	Quiet  bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func slogLevel(level int) slog.Level {
	switch {
	case level <= 0:
		return slog.LevelError
	case level == 1:
		return slog.LevelWarn
	case level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// NewLogger builds the app logger. Without a log file it writes to stderr
// (no timestamps, so console output stays terse); with one it defers to
// cloudeng.io/cmdutil. Quiet drops everything below error.
func NewLogger(stderr io.Writer, o LogOptions) (*slog.Logger, io.Closer, error) {
	level := o.Level
	if o.Quiet {
		level = 0
	}
	if o.File != "" {
		l, err := cloudcmd.LoggingConfig{Level: level, File: o.File, Format: o.Format}.NewLogger()
		if err != nil {
			return nil, nil, err
		}
		return l.Logger, l, nil
	}
	opts := &slog.HandlerOptions{
		Level: slogLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
	var h slog.Handler
	switch o.Format {
	case "", "text":
		h = slog.NewTextHandler(stderr, opts)
	case "json":
		h = slog.NewJSONHandler(stderr, opts)
	default:
		return nil, nil, fmt.Errorf("unknown log format %q", o.Format)
	}
	return slog.New(h), nopCloser{}, nil
}

// WithLogger stores logger on ctx for ctxlog.Logger.
func WithLogger(ctx context.Context, logger *slog.Logger, attrs ...any) context.Context {
	ctx = ctxlog.Context(ctx, logger)
	if len(attrs) > 0 {
		ctx = ctxlog.ContextWith(ctx, attrs...)
	}
	return ctx
}

// Warnf logs a non-fatal condition at warn level.
func Warnf(ctx context.Context, format string, a ...any) {
	ctxlog.Logger(ctx).Warn(fmt.Sprintf(format, a...))
}
