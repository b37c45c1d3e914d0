package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// frame holds the glyphs of a border style, indexed by the edge constants
// below.
type frame [11]string

const (
	edgeTopLeft = iota
	edgeTopRight
	edgeBottomLeft
	edgeBottomRight
	edgeFill
	edgeBar
	edgeTopTee
	edgeBottomTee
	edgeLeftTee
	edgeRightTee
	edgeCross
)

// newFrame splits glyphs, one rune per edge in constant order.
func newFrame(glyphs string) frame {
	var f frame
	i := 0
	for _, r := range glyphs {
		f[i] = string(r)
		i++
	}
	return f
}

var frames = map[BorderStyle]frame{
	BorderRounded: newFrame("╭╮╰╯─│┬┴├┤┼"),
	BorderASCII:   newFrame("++++-|+++++"),
	BorderHeavy:   newFrame("┏┓┗┛━┃┳┻┣┫╋"),
	BorderDouble:  newFrame("╔╗╚╝═║╦╩╠╣╬"),
}

// grid lays out the segment table in memory so the writer sees a single
// write.
type grid struct {
	body   [][]string
	widths []int
	out    strings.Builder
}

func newGrid(rows []Row, maxText int) *grid {
	body := make([][]string, len(rows))
	for i, row := range rows {
		body[i] = row.cells(true)
	}
	widths := measure(header, body)
	if maxText > 0 {
		widths[textColumn] = min(widths[textColumn], maxText)
	}
	return &grid{body: body, widths: widths}
}

func writeTable(w io.Writer, rows []Row, opts Options) error {
	g := newGrid(rows, opts.MaxText)
	if opts.Border == BorderNone {
		g.plain(opts.Title)
	} else {
		f, ok := frames[opts.Border]
		if !ok {
			return fmt.Errorf("unknown border style %d", opts.Border)
		}
		g.framed(opts.Title, f)
	}
	if opts.Caption != "" {
		g.out.WriteString(opts.Caption)
		g.out.WriteByte('\n')
	}
	_, err := io.WriteString(w, g.out.String())
	return err
}

// plain writes space separated columns with a dashed rule under the header.
func (g *grid) plain(title string) {
	if title != "" {
		g.out.WriteString(title)
		g.out.WriteByte('\n')
	}
	dashes := make([]string, len(g.widths))
	for i, width := range g.widths {
		dashes[i] = strings.Repeat("-", width)
	}
	g.plainRow(header)
	g.plainRow(dashes)
	for _, cells := range g.body {
		g.plainRow(cells)
	}
}

func (g *grid) plainRow(cells []string) {
	g.out.WriteString(strings.TrimRight(strings.Join(g.fitted(cells), "  "), " "))
	g.out.WriteByte('\n')
}

// framed writes the table inside f. A title gets its own full width band
// above the header.
func (g *grid) framed(title string, f frame) {
	if title != "" {
		g.rule(f[edgeTopLeft], f[edgeFill], f[edgeFill], f[edgeTopRight])
		g.out.WriteString(f[edgeBar] + " " + pad(title, tableInnerWidth(g.widths)-2, AlignCenter) + " " + f[edgeBar] + "\n")
		g.rule(f[edgeLeftTee], f[edgeFill], f[edgeTopTee], f[edgeRightTee])
	} else {
		g.rule(f[edgeTopLeft], f[edgeFill], f[edgeTopTee], f[edgeTopRight])
	}
	g.framedRow(header, f[edgeBar])
	g.rule(f[edgeLeftTee], f[edgeFill], f[edgeCross], f[edgeRightTee])
	for _, cells := range g.body {
		g.framedRow(cells, f[edgeBar])
	}
	g.rule(f[edgeBottomLeft], f[edgeFill], f[edgeBottomTee], f[edgeBottomRight])
}

func (g *grid) rule(left, fill, joint, right string) {
	spans := make([]string, len(g.widths))
	for i, width := range g.widths {
		spans[i] = strings.Repeat(fill, width+2)
	}
	g.out.WriteString(left + strings.Join(spans, joint) + right + "\n")
}

func (g *grid) framedRow(cells []string, bar string) {
	g.out.WriteString(bar + " " + strings.Join(g.fitted(cells), " "+bar+" ") + " " + bar + "\n")
}

// fitted truncates and pads each cell to its column.
func (g *grid) fitted(cells []string) []string {
	out := make([]string, len(g.widths))
	for i, width := range g.widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		out[i] = fit(cell, width, segmentColumns[i].align)
	}
	return out
}

// tableInnerWidth is the width between the outer bars of a framed table:
// every cell plus one space either side, and one bar between cells.
func tableInnerWidth(widths []int) int {
	n := max(len(widths)-1, 0)
	for _, width := range widths {
		n += width + 2
	}
	return n
}

// measure returns the display width of the widest cell in each column.
func measure(titles []string, body [][]string) []int {
	widths := make([]int, len(titles))
	for i, t := range titles {
		widths[i] = runewidth.StringWidth(t)
	}
	for _, cells := range body {
		for i := range min(len(cells), len(widths)) {
			widths[i] = max(widths[i], runewidth.StringWidth(cells[i]))
		}
	}
	return widths
}

// fit cuts s down to width display columns, marking the cut with "..."
// when there is room, then pads it.
func fit(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		tail := "..."
		if width <= len(tail) {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	return pad(s, width, align)
}

func pad(s string, width int, align Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
	}
	return s + strings.Repeat(" ", gap)
}
