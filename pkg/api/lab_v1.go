// pkg/api/lab_v1.go
package api

// GCRecordV1 is one downloaded record with its GC fraction.
type GCRecordV1 struct {
	ID     string  `json:"id" yaml:"id"`
	Length int     `json:"length" yaml:"length"`
	GC     float64 `json:"gc" yaml:"gc"`
}

// QCReportV1 is the FASTQ quality summary for one input file.
type QCReportV1 struct {
	File       string  `json:"file" yaml:"file"`
	Reads      int64   `json:"reads" yaml:"reads"`
	Bases      int64   `json:"bases" yaml:"bases"`
	NBases     int64   `json:"n_bases" yaml:"n_bases"`
	MeanLength float64 `json:"mean_length" yaml:"mean_length"`
	NRate      float64 `json:"n_rate" yaml:"n_rate"`
	MeanPhred  float64 `json:"mean_phred" yaml:"mean_phred"`
}

// VariantHitsV1 is the PubMed search outcome for one VCF variant.
type VariantHitsV1 struct {
	ID    string   `json:"id" yaml:"id"`
	Chrom string   `json:"chrom" yaml:"chrom"`
	Pos   string   `json:"pos" yaml:"pos"`
	Query string   `json:"query" yaml:"query"`
	PMIDs []string `json:"pmids" yaml:"pmids"`
}
