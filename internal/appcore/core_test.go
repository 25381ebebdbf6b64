package appcore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biolab/internal/clibase"
)

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestFlushBrokenPipeIsSuccess(t *testing.T) {
	var stderr bytes.Buffer
	w := bufio.NewWriter(failWriter{io.ErrClosedPipe})
	_, _ = w.WriteString("x")
	if code := Flush(w, &stderr, ExitOK); code != ExitOK {
		t.Fatalf("code = %d", code)
	}
	w = bufio.NewWriter(failWriter{errors.New("disk full")})
	_, _ = w.WriteString("x")
	if code := Flush(w, &stderr, ExitOK); code != ExitIO {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(stderr.String(), "disk full") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestParseResult(t *testing.T) {
	fs := flag.NewFlagSet("labtest", flag.ContinueOnError)
	fs.Usage = func() { _, _ = io.WriteString(fs.Output(), "USAGE\n") }
	run := func(err error, version bool) (int, bool, string, string) {
		var out, errb bytes.Buffer
		outw := bufio.NewWriter(&out)
		code, done := ParseResult(fs, "labtest", err, version, outw, &errb, func(w io.Writer) {
			_, _ = io.WriteString(w, "EXAMPLES\n")
		})
		return code, done, out.String(), errb.String()
	}
	if code, done, out, _ := run(flag.ErrHelp, false); !done || code != ExitOK || out != "USAGE\n" {
		t.Fatalf("help: %d %v %q", code, done, out)
	}
	if code, done, out, _ := run(clibase.ErrPrintedAndExitOK, false); !done || code != ExitOK || out != "EXAMPLES\n" {
		t.Fatalf("examples: %d %v %q", code, done, out)
	}
	if code, done, _, errs := run(errors.New("bad flag"), false); !done || code != ExitUsage || errs != "bad flag\n" {
		t.Fatalf("usage: %d %v %q", code, done, errs)
	}
	if code, done, out, _ := run(nil, true); !done || code != ExitOK || !strings.HasPrefix(out, "labtest version ") {
		t.Fatalf("version: %d %v %q", code, done, out)
	}
	if _, done, _, _ := run(nil, false); done {
		t.Fatal("plain parse must not finish the run")
	}
}

func TestSetupConfigLogLevel(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(fn, []byte("logging:\n  level: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stderr bytes.Buffer
	c := clibase.Common{ConfigFile: fn, LogLevel: 1, LogFormat: "text"}
	env, err := Setup(context.Background(), "labtest", &stderr, c, map[string]bool{})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer env.Close()
	if env.Ctx == nil {
		t.Fatal("nil ctx")
	}
	if env.Config.Logging.Level == nil || *env.Config.Logging.Level != 2 {
		t.Fatalf("config not loaded: %+v", env.Config.Logging)
	}
}

func TestSetupMissingConfig(t *testing.T) {
	c := clibase.Common{ConfigFile: filepath.Join(t.TempDir(), "none.yaml"), LogFormat: "text"}
	if _, err := Setup(context.Background(), "labtest", io.Discard, c, nil); err == nil {
		t.Fatal("want error for missing config")
	}
}

func TestInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if Interrupted(ctx, ExitIO) != ExitIO {
		t.Fatal("live ctx must keep code")
	}
	cancel()
	if Interrupted(ctx, ExitIO) != ExitInterrupted || Interrupted(ctx, ExitOK) != ExitOK {
		t.Fatal("canceled ctx mapping")
	}
}
