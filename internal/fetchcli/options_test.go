package fetchcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestParseQuery(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--email", "a@b.c", "-Q", "TP53[Gene]", "--out", "x.fa", "-o", "jsonl"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Query != "TP53[Gene]" || o.DB != "nuccore" || o.RetMax != 3 || o.Output != "jsonl" || o.Email != "a@b.c" {
		t.Fatalf("opts = %+v", o)
	}
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--out", "x.fa"},
		{"--accession", "NM_1", "--query", "q", "--out", "x.fa"},
		{"--accession", "NM_1"},
		{"--accession", "NM_1", "--out", "x.fa", "--db", "gene"},
		{"--accession", "NM_1", "--out", "x.fa", "--retmax", "0"},
		{"--accession", "NM_1", "--out", "x.fa", "stray"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%v: want error", args)
		}
	}
}
