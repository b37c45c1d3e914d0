package report

import (
	"encoding/csv"
	"io"
)

// writeCSV writes a header row and one record per segment. Text is written
// raw; the csv writer quotes it as needed.
func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.cells(false)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
