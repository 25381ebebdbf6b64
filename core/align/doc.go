// Package align implements textbook pairwise alignment under a linear gap
// model: Needleman-Wunsch (global) and Smith-Waterman (local).
//
// It is domain-only. It never reads files, logs, or formats output; callers
// own the sequences going in and the Result coming out. Use pkg/api for a
// stable wire shape.
package align
