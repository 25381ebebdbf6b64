package vcf

import (
	"strings"
	"testing"
)

const demo = `##fileformat=VCFv4.2
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO
17	7579472	rs1042522	G	C	.	PASS	.
17	7578406	.	C	T	.	PASS	.
malformed line
17	7577120	.	C
`

func TestParse(t *testing.T) {
	vs, err := Parse(strings.NewReader(demo), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(vs) != 2 {
		t.Fatalf("want 2 variants, got %d: %+v", len(vs), vs)
	}
	if vs[0].Query != "rs1042522" || vs[0].Chrom != "17" || vs[0].Pos != "7579472" {
		t.Fatalf("first = %+v", vs[0])
	}
	if vs[1].Query != "chr17:7578406 AND TP53" || vs[1].ID != "." {
		t.Fatalf("second = %+v", vs[1])
	}
}

func TestParseCustomGene(t *testing.T) {
	vs, err := Parse(strings.NewReader("1\t100\t.\tA\tG\n"), "BRCA1")
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 1 || vs[0].Query != "chr1:100 AND BRCA1" {
		t.Fatalf("got %+v", vs)
	}
}

func TestParseEmpty(t *testing.T) {
	vs, err := Parse(strings.NewReader("#only header\n"), "")
	if err != nil || len(vs) != 0 {
		t.Fatalf("got %v, %v", vs, err)
	}
}
