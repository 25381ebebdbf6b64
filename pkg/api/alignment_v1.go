// pkg/api/alignment_v1.go
package api

// ScoringV1 is the wire form of a linear-gap scoring scheme.
type ScoringV1 struct {
	Match    int `json:"match" yaml:"match"`
	Mismatch int `json:"mismatch" yaml:"mismatch"`
	Gap      int `json:"gap" yaml:"gap"`
}

// AlignmentV1 is the stable JSON/YAML schema for one pairwise alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Spans are 0-based and half-open.
type AlignmentV1 struct {
	Mode      string    `json:"mode" yaml:"mode"` // "global" | "local"
	Algorithm string    `json:"algorithm" yaml:"algorithm"`
	ID1       string    `json:"id1" yaml:"id1"`
	ID2       string    `json:"id2" yaml:"id2"`
	Aligned1  string    `json:"aligned1" yaml:"aligned1"`
	Aligned2  string    `json:"aligned2" yaml:"aligned2"`
	Score     int       `json:"score" yaml:"score"`
	Start1    int       `json:"start1" yaml:"start1"`
	End1      int       `json:"end1" yaml:"end1"`
	Start2    int       `json:"start2" yaml:"start2"`
	End2      int       `json:"end2" yaml:"end2"`
	Length    int       `json:"length" yaml:"length"`
	Identity  float64   `json:"identity" yaml:"identity"`
	Scoring   ScoringV1 `json:"scoring" yaml:"scoring"`
}
