package pubmedapp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biolab/pkg/api"
)

const pubmedXML = `<?xml version="1.0"?><PubmedArticleSet><PubmedArticle/></PubmedArticleSet>`

func fakePubMed(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("db") != "pubmed" {
			t.Errorf("db = %q", q.Get("db"))
		}
		switch r.URL.Path {
		case "/esearch.fcgi":
			switch q.Get("term") {
			case "rs1042522":
				_, _ = w.Write([]byte(`{"esearchresult":{"idlist":["111","222"]}}`))
			case "broken":
				http.Error(w, "bad term", http.StatusBadRequest)
			case "TP53 AND cancer":
				if q.Get("retmax") != "5" {
					t.Errorf("retmax = %q", q.Get("retmax"))
				}
				_, _ = w.Write([]byte(`{"esearchresult":{"idlist":["9","8"]}}`))
			default:
				_, _ = w.Write([]byte(`{"esearchresult":{"idlist":[]}}`))
			}
		case "/efetch.fcgi":
			if q.Get("id") != "9,8" || q.Get("retmode") != "xml" {
				t.Errorf("efetch query = %v", q)
			}
			_, _ = w.Write([]byte(pubmedXML))
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

const demoVCF = "##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\n17\t7579472\trs1042522\tG\tC\n17\t7578406\t.\tC\tT\n"

func writeVCF(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "demo.vcf")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestTermToFile(t *testing.T) {
	srv := fakePubMed(t)
	dst := filepath.Join(t.TempDir(), "out", "pubmed.xml")
	code, out, errs := run("--base-url", srv.URL, "--term", "TP53 AND cancer", "--out", dst)
	if code != 0 || out != "" {
		t.Fatalf("exit %d out=%q err=%s", code, out, errs)
	}
	b, err := os.ReadFile(dst)
	if err != nil || string(b) != pubmedXML {
		t.Fatalf("saved %q %v", b, err)
	}
}

func TestTermNoHits(t *testing.T) {
	srv := fakePubMed(t)
	code, _, errs := run("--base-url", srv.URL, "--term", "zzz")
	if code != 1 || !strings.Contains(errs, "no PMIDs found") {
		t.Fatalf("exit %d err=%q", code, errs)
	}
}

func TestVCFText(t *testing.T) {
	srv := fakePubMed(t)
	code, out, errs := run("--base-url", srv.URL, "--vcf", writeVCF(t, demoVCF))
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	want := "=== Variant: rs1042522 (17:7579472) ===\nPubMed query: rs1042522\nPMIDs: 111, 222\n\n" +
		"=== Variant: . (17:7578406) ===\nPubMed query: chr17:7578406 AND TP53\nPMIDs: \n\n"
	if out != want {
		t.Fatalf("got %q", out)
	}
}

func TestVCFJSON(t *testing.T) {
	srv := fakePubMed(t)
	code, out, errs := run("--base-url", srv.URL, "--vcf", writeVCF(t, demoVCF), "-o", "json", "--gene", "MDM2")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	var rows []api.VariantHitsV1
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[1].Query != "chr17:7578406 AND MDM2" || len(rows[0].PMIDs) != 2 || rows[1].PMIDs == nil {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestVCFPartialFailure(t *testing.T) {
	srv := fakePubMed(t)
	body := "1\t10\trs1042522\tA\tG\n1\t20\tbroken\tA\tG\n"
	code, out, errs := run("--base-url", srv.URL, "--vcf", writeVCF(t, body))
	if code != 3 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "PMIDs: 111, 222") || !strings.Contains(errs, "variant broken (1:20)") {
		t.Fatalf("out=%q err=%q", out, errs)
	}
}

func TestVCFMissing(t *testing.T) {
	code, _, errs := run("--vcf", filepath.Join(t.TempDir(), "none.vcf"))
	if code != 2 || !strings.Contains(errs, "not found") {
		t.Fatalf("exit %d err=%q", code, errs)
	}
}
