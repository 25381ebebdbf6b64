package writers

import (
	"io"

	"biolab/internal/output"
	"biolab/internal/pretty"
)

// Alignment is the KindAlignment payload.
type Alignment struct {
	output.Alignment
	Header        bool
	Pretty        bool
	PrettyOptions pretty.Options
	FASTAWidth    int
}

func init() {
	Register(KindAlignment, output.FormatText, writeAlignmentText)
	Register(KindAlignment, output.FormatJSON, func(w io.Writer, p any) error {
		a, ok := p.(Alignment)
		if !ok {
			return payloadErr(KindAlignment, p)
		}
		return encodeJSON(w, output.ToAPIAlignment(a.Alignment))
	})
	Register(KindAlignment, output.FormatYAML, func(w io.Writer, p any) error {
		a, ok := p.(Alignment)
		if !ok {
			return payloadErr(KindAlignment, p)
		}
		return encodeYAML(w, output.ToAPIAlignment(a.Alignment))
	})
	Register(KindAlignment, output.FormatFASTA, func(w io.Writer, p any) error {
		a, ok := p.(Alignment)
		if !ok {
			return payloadErr(KindAlignment, p)
		}
		return output.WriteAlignmentFASTA(w, a.Alignment, a.FASTAWidth)
	})
}

func writeAlignmentText(w io.Writer, p any) error {
	a, ok := p.(Alignment)
	if !ok {
		return payloadErr(KindAlignment, p)
	}
	if err := output.WriteAlignmentText(w, a.Alignment, a.Header); err != nil {
		return err
	}
	if !a.Pretty {
		return nil
	}
	_, err := io.WriteString(w, pretty.Render(a.Result, a.ID1, a.ID2, a.PrettyOptions))
	return err
}
