package pubmedcli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestModeDefaults(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--term", "TP53 AND cancer"})
	if err != nil || o.Max != DefaultTermMax {
		t.Fatalf("term: %+v %v", o, err)
	}
	o, err = ParseArgs(newFS(), []string{"--vcf", "v.vcf", "-o", "json"})
	if err != nil || o.Max != DefaultVCFMax || o.Gene != "TP53" {
		t.Fatalf("vcf: %+v %v", o, err)
	}
	o, err = ParseArgs(newFS(), []string{"--vcf", "v.vcf", "--max", "10", "--gene", "BRCA1"})
	if err != nil || o.Max != 10 || o.Gene != "BRCA1" {
		t.Fatalf("explicit: %+v %v", o, err)
	}
}

func TestParseErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"--term", "x", "--vcf", "v.vcf"},
		{"--term", "x", "-o", "json"},
		{"--vcf", "v.vcf", "--max", "0"},
		{"--vcf", "v.vcf", "extra"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%v: want error", args)
		}
	}
}
