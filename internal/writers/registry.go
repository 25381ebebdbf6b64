// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Kind names the payload family a writer handles.
type Kind string

const (
	KindAlignment Kind = "alignment"
	KindGC        Kind = "gc"
	KindQC        Kind = "qc"
	KindVariant   Kind = "variant"
)

// WriteFunc serializes one payload of its kind.
type WriteFunc func(w io.Writer, payload any) error

// registry maps kind → format → handler. Filled from init() blocks.
var registry = map[Kind]map[string]WriteFunc{}

// Register installs fn for (kind, format); the last registration wins.
func Register(kind Kind, format string, fn WriteFunc) {
	m := registry[kind]
	if m == nil {
		m = map[string]WriteFunc{}
		registry[kind] = m
	}
	m[format] = fn
}

// Write dispatches payload to the writer registered for (kind, format).
func Write(kind Kind, format string, w io.Writer, payload any) error {
	fn, ok := registry[kind][format]
	if !ok {
		return fmt.Errorf("unknown %s format %q (no writer registered)", kind, format)
	}
	return fn(w, payload)
}

// Formats lists the registered formats of kind, sorted.
func Formats(kind Kind) []string {
	out := make([]string, 0, len(registry[kind]))
	for f := range registry[kind] {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func payloadErr(kind Kind, payload any) error {
	return fmt.Errorf("%s writer: unexpected payload %T", kind, payload)
}
