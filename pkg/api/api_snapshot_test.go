package api

import (
	"encoding/json"
	"testing"
)

func TestAlignmentV1Keys_Stable(t *testing.T) {
	b, err := json.Marshal(AlignmentV1{Mode: "global", Scoring: ScoringV1{1, -1, -2}})
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"mode":"global","algorithm":"","id1":"","id2":"","aligned1":"","aligned2":"","score":0,"start1":0,"end1":0,"start2":0,"end2":0,"length":0,"identity":0,"scoring":{"match":1,"mismatch":-1,"gap":-2}}`
	if string(b) != want {
		t.Fatalf("AlignmentV1 wire form changed:\n got:  %s\n want: %s", b, want)
	}
}

func TestVariantHitsV1Keys_Stable(t *testing.T) {
	b, err := json.Marshal(VariantHitsV1{ID: "rs1", Chrom: "17", Pos: "7579472", Query: "rs1", PMIDs: []string{"1"}})
	if err != nil {
		t.Fatal(err)
	}
	const want = `{"id":"rs1","chrom":"17","pos":"7579472","query":"rs1","pmids":["1"]}`
	if string(b) != want {
		t.Fatalf("VariantHitsV1 wire form changed:\n got:  %s\n want: %s", b, want)
	}
}
