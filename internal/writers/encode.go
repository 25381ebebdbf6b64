package writers

import (
	"encoding/json"
	"io"

	"biolab/internal/jsonutil"
	"gopkg.in/yaml.v3"
)

func encodeJSON(w io.Writer, v any) error { return jsonutil.EncodePretty(w, v) }

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// encodeJSONL writes one compact JSON value per line.
func encodeJSONL[T any](w io.Writer, rows []T) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
