// Package output renders lab results as text and converts them to the
// pkg/api wire schema. Writers in internal/writers choose between them.
package output

import "biolab-core/align"

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
	FormatFASTA = "fasta"
)

// QCReportTitle opens every text QC report.
const QCReportTitle = "QC report"

// AlignmentBanner is the header line printed above a text alignment.
func AlignmentBanner(mode align.Mode) string {
	name := "Global"
	if mode == align.Local {
		name = "Local"
	}
	return "=== " + name + " alignment (" + mode.Algorithm() + ") ==="
}
