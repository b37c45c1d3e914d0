package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitTruncates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc...", fit("abcdefgh", 6, AlignLeft))
	assert.Equal(t, "abc", fit("abcdefgh", 3, AlignLeft))
	assert.Equal(t, "ab  ", fit("ab", 4, AlignLeft))
}

func TestPad(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "  a", pad("a", 3, AlignRight))
	assert.Equal(t, " a  ", pad("a", 4, AlignCenter))
	assert.Equal(t, "toolong", pad("toolong", 3, AlignLeft))
	// "你" is a full-width character and takes two columns.
	assert.Equal(t, "你  ", pad("你", 4, AlignLeft))
}

func TestMeasureWideCharacters(t *testing.T) {
	t.Parallel()
	widths := measure([]string{"a", "b"}, [][]string{{"你好", "x"}})
	assert.Equal(t, []int{4, 1}, widths)
}

func TestTableInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, tableInnerWidth(nil))
	assert.Equal(t, 5, tableInnerWidth([]int{3}))
	assert.Equal(t, 10, tableInnerWidth([]int{1, 4}))
}

func TestTableInnerWidthMatchesRule(t *testing.T) {
	t.Parallel()
	g := &grid{widths: []int{1, 4, 2}}
	g.rule("+", "-", "+", "+")
	line := g.out.String()
	assert.Len(t, line, tableInnerWidth(g.widths)+len("++\n"))
}

func TestFrames(t *testing.T) {
	t.Parallel()
	for style, f := range frames {
		for i, glyph := range f {
			assert.NotEmpty(t, glyph, "style %d edge %d", style, i)
		}
	}
	assert.Equal(t, "╭", frames[BorderRounded][edgeTopLeft])
	assert.Equal(t, "┼", frames[BorderRounded][edgeCross])
	assert.Equal(t, "|", frames[BorderASCII][edgeBar])
	assert.Equal(t, "╣", frames[BorderDouble][edgeRightTee])
}

func TestGridMaxText(t *testing.T) {
	t.Parallel()
	rows := []Row{{Type: "literal", Length: 11, Text: "hello world"}}
	g := newGrid(rows, 5)
	assert.Equal(t, 5, g.widths[textColumn])
	assert.Equal(t, `"h...`, g.fitted(g.body[0])[textColumn])

	wide := newGrid(rows, 100)
	assert.Equal(t, len(`"hello world"`), wide.widths[textColumn])
}

func TestCellsQuoting(t *testing.T) {
	t.Parallel()
	r := Row{Index: 2, Type: "literal", Offset: 5, Length: 2, Text: "a\tb"}
	assert.Equal(t, []string{"2", "literal", "5", "2", "", "", `"a\tb"`}, r.cells(true))
	assert.Equal(t, "a\tb", r.cells(false)[textColumn])
}

func TestHeaderMatchesColumns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"#", "Type", "Offset", "Length", "Kind", "Sig", "Text"}, header)
	assert.Equal(t, "Sig", segmentColumns[sigColumn].title)
	assert.Equal(t, "Text", segmentColumns[textColumn].title)
}

func TestRowFuncs(t *testing.T) {
	t.Parallel()
	figures := 4
	rows := []Row{
		{Index: 0, Type: "literal", Text: `\{a` + "\n"},
		{Index: 1, Type: "specifier", Kind: "decimal", SigFigs: &figures, Text: "{d4}"},
	}
	var buf bytes.Buffer
	err := writeGoTemplate(&buf, `{{quote .Text}}|{{unescape .Text | quote}}|{{sig .}}`, rows)
	require.NoError(t, err)
	assert.Equal(t, `"\\{a\n"|"{a\n"|`+"\n"+`"{d4}"|"{d4}"|4`+"\n", buf.String())
}
