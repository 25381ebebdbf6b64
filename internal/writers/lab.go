package writers

import (
	"fmt"
	"io"

	"biolab/internal/jsonlutil"
	"biolab/internal/output"
	"biolab/internal/vcf"
)

func init() {
	Register(KindGC, output.FormatText, func(w io.Writer, p any) error {
		rows, ok := p.([]output.GCRecord)
		if !ok {
			return payloadErr(KindGC, p)
		}
		for _, r := range rows {
			if _, err := fmt.Fprintln(w, output.FormatGCLine(r)); err != nil {
				return err
			}
		}
		return nil
	})
	registerWire(KindGC, output.ToAPIGC, output.FormatJSON, output.FormatJSONL, output.FormatYAML)

	Register(KindQC, output.FormatText, func(w io.Writer, p any) error {
		rows, ok := p.([]output.QCReport)
		if !ok {
			return payloadErr(KindQC, p)
		}
		for i, r := range rows {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := output.WriteQCText(w, r); err != nil {
				return err
			}
		}
		return nil
	})
	registerWire(KindQC, output.ToAPIQC, output.FormatJSON, output.FormatYAML)

	Register(KindVariant, output.FormatText, func(w io.Writer, p any) error {
		rows, ok := p.([]vcf.Hits)
		if !ok {
			return payloadErr(KindVariant, p)
		}
		for _, r := range rows {
			if err := output.WriteVariantText(w, r); err != nil {
				return err
			}
		}
		return nil
	})
	registerWire(KindVariant, output.ToAPIVariant, output.FormatJSON, output.FormatJSONL, output.FormatYAML)
}

// registerWire installs wire-schema writers for a slice payload of T.
func registerWire[T, W any](kind Kind, toWire func(T) W, formats ...string) {
	conv := func(p any) ([]W, error) {
		rows, ok := p.([]T)
		if !ok {
			return nil, payloadErr(kind, p)
		}
		out := make([]W, 0, len(rows))
		for _, r := range rows {
			out = append(out, toWire(r))
		}
		return out, nil
	}
	for _, f := range formats {
		var enc func(io.Writer, []W) error
		switch f {
		case output.FormatJSON:
			enc = func(w io.Writer, v []W) error { return encodeJSON(w, v) }
		case output.FormatJSONL:
			enc = encodeJSONL[W]
		case output.FormatYAML:
			enc = func(w io.Writer, v []W) error { return encodeYAML(w, v) }
		default:
			panic("writers: no wire encoder for " + f)
		}
		Register(kind, f, func(w io.Writer, p any) error {
			rows, err := conv(p)
			if err != nil {
				return err
			}
			return enc(w, rows)
		})
	}
}

// StartGCWriter streams GC rows as they are computed. text and jsonl write
// each row immediately; other formats buffer and dispatch through the
// registry once the channel is closed.
func StartGCWriter(out io.Writer, format string, bufSize int) (chan<- output.GCRecord, <-chan error) {
	if format == output.FormatJSONL {
		return jsonlutil.Start(out, bufSize, output.ToAPIGC, IsBrokenPipe)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.GCRecord, bufSize)
	done := make(chan error, 1)
	go func() {
		var err error
		var buf []output.GCRecord
		for r := range in {
			if err != nil {
				continue
			}
			if format == output.FormatText {
				_, err = fmt.Fprintln(out, output.FormatGCLine(r))
				continue
			}
			buf = append(buf, r)
		}
		if err == nil && format != output.FormatText {
			if buf == nil {
				buf = []output.GCRecord{}
			}
			err = Write(KindGC, format, out, buf)
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		done <- err
	}()
	return in, done
}
