// Package vcf extracts variants from VCF text and derives PubMed queries.
package vcf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultGene is used in positional queries when no gene is given.
const DefaultGene = "TP53"

// Variant is one VCF data line reduced to what a literature search needs.
// Chrom and Pos are kept verbatim.
type Variant struct {
	Chrom string
	Pos   string
	ID    string
	Ref   string
	Alt   string
	Query string
}

// Hits is a Variant with the PubMed IDs found for its query.
type Hits struct {
	Variant
	PMIDs []string
}

// Query is the variant ID when it has one, else "chr{CHROM}:{POS} AND {gene}".
func Query(chrom, pos, id, gene string) string {
	if id != "." && id != "" {
		return id
	}
	return fmt.Sprintf("chr%s:%s AND %s", chrom, pos, gene)
}

// Parse reads VCF data lines. Meta and header lines ('#') are skipped, as
// are lines with fewer than five tab-separated fields.
func Parse(r io.Reader, gene string) ([]Variant, error) {
	if gene == "" {
		gene = DefaultGene
	}
	var out []Variant
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 5 {
			continue
		}
		out = append(out, Variant{
			Chrom: f[0], Pos: f[1], ID: f[2], Ref: f[3], Alt: f[4],
			Query: Query(f[0], f[1], f[2], gene),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
