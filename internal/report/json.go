package report

import (
	"encoding/json"
	"io"
)

const indent = "  "

func writeJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if rows == nil {
		rows = []Row{}
	}
	return enc.Encode(rows)
}
