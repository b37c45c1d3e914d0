package report

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row.cells(true), "\t")); err != nil {
			return err
		}
	}
	return nil
}
