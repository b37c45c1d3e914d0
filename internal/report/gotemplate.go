package report

import (
	"fmt"
	"io"
	"strconv"
	"text/template"

	"github.com/bjaus/braces"
)

// rowFuncs are available to go-template reports alongside the Row fields.
// quote makes control characters visible, unescape shows a literal as it
// renders, and sig gives the significant figures or "" for a literal.
var rowFuncs = template.FuncMap{
	"quote":    strconv.Quote,
	"unescape": braces.Unescape,
	"sig":      func(r Row) string { return segmentColumns[sigColumn].value(r) },
}

// writeGoTemplate executes tmpl once per segment, one line each.
func writeGoTemplate(w io.Writer, tmpl string, rows []Row) error {
	t, err := template.New("segment").Funcs(rowFuncs).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, row := range rows {
		if err := t.Execute(w, row); err != nil {
			return fmt.Errorf("segment %d: %w", row.Index, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
