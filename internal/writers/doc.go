// Package writers turns lab results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text, pretty blocks, JSON/JSONL/YAML/FASTA).
//   - core/align stays domain-only; apps only pick a kind and a format.
//   - JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
