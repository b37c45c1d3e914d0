// Package report renders parsed format strings as tables and structured
// documents for inspection.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/braces"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, Markdown, CSV, TSV, JSON, JSONL, YAML, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes a text/template against each
// [Row] and writes the result on its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Row describes one segment of a parsed format string.
// Kind and SigFigs are empty for literals.
type Row struct {
	Index   int    `json:"index" yaml:"index"`
	Type    string `json:"type" yaml:"type"`
	Offset  int    `json:"offset" yaml:"offset"`
	Length  int    `json:"length" yaml:"length"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	SigFigs *int   `json:"sig_figs,omitempty" yaml:"sig_figs,omitempty"`
	Text    string `json:"text" yaml:"text"`
}

// Rows builds one Row per segment.
func Rows(segments []braces.Segment) []Row {
	rows := make([]Row, len(segments))
	for i, seg := range segments {
		row := Row{
			Index:  i,
			Type:   seg.Type.String(),
			Offset: seg.Offset,
			Length: len(seg.Text),
			Text:   seg.Text,
		}
		if seg.Type == braces.SegmentSpecifier {
			figures := seg.Spec.SignificantFigures
			row.Kind = seg.Spec.Kind.String()
			row.SigFigs = &figures
		}
		rows[i] = row
	}
	return rows
}

// column describes one field of a Row as it appears in tabular formats.
type column struct {
	title string
	align Alignment
	value func(Row) string
}

var segmentColumns = []column{
	{"#", AlignRight, func(r Row) string { return strconv.Itoa(r.Index) }},
	{"Type", AlignLeft, func(r Row) string { return r.Type }},
	{"Offset", AlignRight, func(r Row) string { return strconv.Itoa(r.Offset) }},
	{"Length", AlignRight, func(r Row) string { return strconv.Itoa(r.Length) }},
	{"Kind", AlignLeft, func(r Row) string { return r.Kind }},
	{"Sig", AlignRight, func(r Row) string {
		if r.SigFigs == nil {
			return ""
		}
		return strconv.Itoa(*r.SigFigs)
	}},
	{"Text", AlignLeft, func(r Row) string { return r.Text }},
}

// Indexes into segmentColumns.
const (
	sigColumn  = 5
	textColumn = 6
)

var header = func() []string {
	titles := make([]string, len(segmentColumns))
	for i, c := range segmentColumns {
		titles[i] = c.title
	}
	return titles
}()

// cells returns the row as strings. With quote set, Text is quoted so that
// control characters cannot break the layout of line oriented formats.
func (r Row) cells(quote bool) []string {
	out := make([]string, len(segmentColumns))
	for i, c := range segmentColumns {
		out[i] = c.value(r)
	}
	if quote {
		out[textColumn] = strconv.Quote(out[textColumn])
	}
	return out
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Options tunes table output. HTML uses Title as its caption; other
// formats ignore it.
type Options struct {
	// Title is rendered above the table. Default: no title.
	Title string
	// Caption is rendered below the table. Default: no caption.
	Caption string
	// Border selects the border characters. Default: BorderRounded.
	Border BorderStyle
	// MaxText truncates the Text column with "..." when positive.
	MaxText int
}

// Write renders rows to w in format f.
func Write(w io.Writer, f Format, rows []Row) error {
	return WriteOptions(w, f, rows, Options{})
}

// WriteOptions is [Write] with table options.
func WriteOptions(w io.Writer, f Format, rows []Row, opts Options) error {
	switch f {
	case Table:
		return writeTable(w, rows, opts)
	case Markdown:
		return writeMarkdown(w, rows)
	case CSV:
		return writeCSV(w, rows)
	case TSV:
		return writeTSV(w, rows)
	case JSON:
		return writeJSON(w, rows)
	case JSONL:
		return writeJSONL(w, rows)
	case YAML:
		return writeYAML(w, rows)
	case HTML:
		return writeHTML(w, rows, opts.Title)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, rows)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders rows and returns the bytes.
func Marshal(f Format, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
