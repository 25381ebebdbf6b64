package fetchapp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fakeNCBI(t *testing.T, ids string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") != "student@example.com" {
			t.Errorf("email missing: %v", r.URL.Query())
		}
		switch r.URL.Path {
		case "/esearch.fcgi":
			_, _ = w.Write([]byte(`{"esearchresult":{"idlist":` + ids + `}}`))
		case "/efetch.fcgi":
			if r.URL.Query().Get("rettype") != "fasta" {
				t.Errorf("rettype = %q", r.URL.Query().Get("rettype"))
			}
			_, _ = w.Write([]byte(">NM_1.1 test one\nGGCCAATT\n>NM_2.1 test two\nGGGC\nNNAT\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(args ...string) (int, string, string) {
	var out, errb bytes.Buffer
	code := Run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestFetchQuery(t *testing.T) {
	srv := fakeNCBI(t, `["1","2"]`)
	dst := filepath.Join(t.TempDir(), "work", "lab01", "tp53.fa")
	code, out, errs := run("--email", "student@example.com", "--base-url", srv.URL,
		"--query", "TP53[Gene]", "--out", dst)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	if out != "NM_1.1\tGC=0.500\nNM_2.1\tGC=0.667\n" {
		t.Fatalf("got %q", out)
	}
	b, err := os.ReadFile(dst)
	if err != nil || !strings.HasPrefix(string(b), ">NM_1.1 test one\n") {
		t.Fatalf("saved file: %q %v", b, err)
	}
}

func TestFetchAccessionJSONL(t *testing.T) {
	srv := fakeNCBI(t, `[]`)
	dst := filepath.Join(t.TempDir(), "nm.fa")
	code, out, errs := run("--email", "student@example.com", "--base-url", srv.URL,
		"--accession", "NM_000546", "--out", dst, "-o", "jsonl")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	want := "{\"id\":\"NM_1.1\",\"length\":8,\"gc\":0.5}\n{\"id\":\"NM_2.1\",\"length\":8,\"gc\":0.6666666666666666}\n"
	if out != want {
		t.Fatalf("got %q", out)
	}
}

func TestFetchNoIDs(t *testing.T) {
	srv := fakeNCBI(t, `[]`)
	code, out, errs := run("--email", "student@example.com", "--base-url", srv.URL,
		"--query", "nothing", "--out", filepath.Join(t.TempDir(), "x.fa"))
	if code != 1 || out != "" || !strings.Contains(errs, "no IDs found") {
		t.Fatalf("exit %d out=%q err=%q", code, out, errs)
	}
}

func TestFetchEmailFromConfig(t *testing.T) {
	srv := fakeNCBI(t, `["1"]`)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "biolab.yaml")
	body := "ncbi:\n  email: student@example.com\n  base_url: " + srv.URL + "\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, errs := run("--config", cfg, "--query", "q", "--out", filepath.Join(dir, "x.fa"))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
}

func TestFetchRequiresEmail(t *testing.T) {
	code, _, errs := run("--accession", "NM_1", "--out", filepath.Join(t.TempDir(), "x.fa"))
	if code != 2 || !strings.Contains(errs, "--email is required") {
		t.Fatalf("exit %d err=%q", code, errs)
	}
}
