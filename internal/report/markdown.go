package report

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, rows []Row) error {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = row.cells(true)
		// A pipe would end the cell early.
		cells[i][textColumn] = strings.ReplaceAll(cells[i][textColumn], "|", `\|`)
	}

	// Minimum width 3 leaves room for alignment markers.
	widths := measure(header, cells)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch segmentColumns[i].align {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range cells {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = pad(cell, width, segmentColumns[i].align)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

