package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"biolab-core/align"
	"biolab/internal/output"
	"biolab/internal/pretty"
	"biolab/pkg/api"
)

func gattaca(header, prettyMode bool) Alignment {
	sc := align.Scoring{Match: 1, Mismatch: -1, Gap: -1}
	return Alignment{
		Alignment: output.Alignment{
			ID1: "s1", ID2: "s2", Mode: align.Global, Scoring: sc,
			Result: align.NeedlemanWunsch("GATTACA", "GCATGCU", sc),
		},
		Header:        header,
		Pretty:        prettyMode,
		PrettyOptions: pretty.DefaultOptions,
		FASTAWidth:    60,
	}
}

func TestAlignmentText(t *testing.T) {
	var b bytes.Buffer
	if err := Write(KindAlignment, "text", &b, gattaca(false, false)); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "s1 vs s2\nG-ATTACA\nGCA-TGCU\nScore: 0\n" {
		t.Fatalf("got %q", got)
	}
}

func TestAlignmentTextHeaderAndPretty(t *testing.T) {
	var b bytes.Buffer
	if err := Write(KindAlignment, "text", &b, gattaca(true, true)); err != nil {
		t.Fatal(err)
	}
	want := "=== Global alignment (Needleman-Wunsch) ===\n" +
		"s1 vs s2\nG-ATTACA\nGCA-TGCU\nScore: 0\n" +
		"# s1 1 G-ATTACA 7\n#      | | |.|.\n# s2 1 GCA-TGCU 7\n"
	if got := b.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestAlignmentJSON(t *testing.T) {
	var b bytes.Buffer
	if err := Write(KindAlignment, "json", &b, gattaca(true, false)); err != nil {
		t.Fatal(err)
	}
	var v api.AlignmentV1
	if err := json.Unmarshal(b.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	if v.Mode != "global" || v.Algorithm != "Needleman-Wunsch" || v.Aligned1 != "G-ATTACA" ||
		v.End1 != 7 || v.Length != 8 || v.Scoring.Gap != -1 {
		t.Fatalf("decoded %+v", v)
	}
}

func TestAlignmentYAML(t *testing.T) {
	var b bytes.Buffer
	if err := Write(KindAlignment, "yaml", &b, gattaca(true, false)); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"mode: global\n", "aligned2: GCA-TGCU\n", "scoring:\n  match: 1\n"} {
		if !strings.Contains(b.String(), want) {
			t.Fatalf("yaml missing %q:\n%s", want, b.String())
		}
	}
}

func TestAlignmentFASTA(t *testing.T) {
	var b bytes.Buffer
	if err := Write(KindAlignment, "fasta", &b, gattaca(true, false)); err != nil {
		t.Fatal(err)
	}
	want := ">s1 global score=0 span=0-7\nG-ATTACA\n>s2 global score=0 span=0-7\nGCA-TGCU\n"
	if b.String() != want {
		t.Fatalf("got %q", b.String())
	}
}
