package cmdutil

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewLoggerStderrLevels(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(&buf, LogOptions{Level: 1})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer closer.Close()

	ctx := WithLogger(context.Background(), logger, "tool", "labtest")
	Warnf(ctx, "disk %d%% full", 90)
	logger.Info("hidden at warn level")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `msg="disk 90% full"`) || !strings.Contains(out, "tool=labtest") {
		t.Fatalf("unexpected log output: %q", out)
	}
	if strings.Contains(out, "hidden") || strings.Contains(out, "time=") {
		t.Fatalf("info or timestamp leaked: %q", out)
	}
}

func TestNewLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewLogger(&buf, LogOptions{Level: 3, Quiet: true})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	Warnf(WithLogger(context.Background(), logger), "should not appear")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
}

func TestNewLoggerBadFormat(t *testing.T) {
	if _, _, err := NewLogger(&bytes.Buffer{}, LogOptions{Format: "xml"}); err == nil {
		t.Fatal("want error for unknown format")
	}
}

func TestWarnfWithoutLogger(t *testing.T) {
	// ctxlog falls back to a discard logger
	Warnf(context.Background(), "nobody listens")
}
