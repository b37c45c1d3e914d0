package report

import (
	"encoding/json"
	"io"
)

// writeJSONL writes one compact JSON object per row.
func writeJSONL(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
