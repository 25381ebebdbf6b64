// internal/output/lab.go
package output

import (
	"fmt"
	"io"
	"strings"

	"biolab-core/gc"
	"biolab/internal/fastq"
	"biolab/internal/vcf"
	"biolab/pkg/api"
)

// GCRecord is one downloaded sequence summarized by its GC fraction.
type GCRecord struct {
	ID     string
	Length int
	GC     float64
}

// NewGCRecord computes the GC fraction of seq.
func NewGCRecord(id string, seq []byte) GCRecord {
	return GCRecord{ID: id, Length: len(seq), GC: gc.Fraction(seq)}
}

// ToAPIGC converts a GCRecord to the wire schema.
func ToAPIGC(r GCRecord) api.GCRecordV1 {
	return api.GCRecordV1{ID: r.ID, Length: r.Length, GC: r.GC}
}

// FormatGCLine renders "<id>\tGC=<0.000>".
func FormatGCLine(r GCRecord) string {
	return fmt.Sprintf("%s\tGC=%.3f", r.ID, r.GC)
}

// QCReport pairs a FASTQ path with its statistics.
type QCReport struct {
	File  string
	Stats fastq.Stats
}

// ToAPIQC converts a QCReport to the wire schema.
func ToAPIQC(r QCReport) api.QCReportV1 {
	s := r.Stats
	return api.QCReportV1{
		File:       r.File,
		Reads:      s.Reads,
		Bases:      s.Bases,
		NBases:     s.NBases,
		MeanLength: s.AvgLength(),
		NRate:      s.PropN(),
		MeanPhred:  s.AvgPhred(),
	}
}

// WriteQCText prints the QC report block for one file.
func WriteQCText(w io.Writer, r QCReport) error {
	s := r.Stats
	_, err := fmt.Fprintf(w, "%s\nFASTQ: %s\nReads: %d\nMean length: %.2f\nN rate: %.4f\nMean Phred: %.2f\n",
		QCReportTitle, r.File, s.Reads, s.AvgLength(), s.PropN(), s.AvgPhred())
	return err
}

// ToAPIVariant converts per-variant PubMed hits to the wire schema.
func ToAPIVariant(h vcf.Hits) api.VariantHitsV1 {
	pmids := h.PMIDs
	if pmids == nil {
		pmids = []string{}
	}
	return api.VariantHitsV1{ID: h.ID, Chrom: h.Chrom, Pos: h.Pos, Query: h.Query, PMIDs: pmids}
}

// WriteVariantText prints one variant block followed by a blank line.
func WriteVariantText(w io.Writer, h vcf.Hits) error {
	_, err := fmt.Fprintf(w, "=== Variant: %s (%s:%s) ===\nPubMed query: %s\nPMIDs: %s\n\n",
		h.ID, h.Chrom, h.Pos, h.Query, strings.Join(h.PMIDs, ", "))
	return err
}
