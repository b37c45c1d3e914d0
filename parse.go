package braces

import (
	"fmt"
	"strings"
)

const escapeChar = '\\'

// SegmentType tells the two kinds of [Segment] apart.
type SegmentType uint8

const (
	SegmentLiteral SegmentType = iota
	SegmentSpecifier
)

// String returns the segment type name.
func (t SegmentType) String() string {
	switch t {
	case SegmentLiteral:
		return "literal"
	case SegmentSpecifier:
		return "specifier"
	default:
		return fmt.Sprintf("SegmentType(%d)", t)
	}
}

// Segment is one parsed unit of a format string.
//
// Text is always a substring of the parsed format string starting at
// Offset: the literal run for literals (escapes still in place), and the
// full "{...}" placeholder for specifiers. Joining the Text of every
// segment in order gives back the format string.
type Segment struct {
	Type   SegmentType
	Offset int
	Text   string
	Spec   Specifier
}

func literalSegment(format string, start, end int) Segment {
	return Segment{Type: SegmentLiteral, Offset: start, Text: format[start:end]}
}

func specifierSegment(format string, open, close int, spec Specifier) Segment {
	return Segment{Type: SegmentSpecifier, Offset: open, Text: format[open : close+1], Spec: spec}
}

func kindOf(c byte) (Kind, bool) {
	switch k := Kind(c); k {
	case KindDecimal, KindHexLower, KindHexUpper, KindScientific, KindDebug:
		return k, true
	}
	return KindDefault, false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func parseError(sentinel error, format string, offset int, reason string) error {
	return fmt.Errorf("%w: %s at offset %d in %q", sentinel, reason, offset, format)
}

// Parse splits format into literal and specifier segments and checks the
// placeholder count against nArgs.
//
// Every placeholder must be closed and the number of placeholders must
// equal nArgs. The one exception is nArgs == 1, which is also accepted
// with no placeholders at all.
//
// A placeholder holds at most one kind character, optionally followed by a
// significant figure count: {}, {d2}, {x}, {e10}. A bare count such as {5}
// is the default kind with that many figures. A count before a kind, as in
// {2d}, is rejected.
func Parse(format string, nArgs int) ([]Segment, error) {
	segments, opened, err := scan(format, min(max(nArgs, 0), len(format))*2+1)
	if err != nil {
		return nil, err
	}
	switch {
	case opened > nArgs:
		return nil, fmt.Errorf("%w: %d specifiers for %d arguments", ErrMoreSpecifiersThanArgs, opened, nArgs)
	case opened < nArgs && nArgs != 1:
		return nil, fmt.Errorf("%w: %d specifiers for %d arguments", ErrFewerSpecifiersThanArgs, opened, nArgs)
	}
	return segments, nil
}

// Segments is [Parse] without the argument count check. Use it to inspect
// a format string before the arguments are known.
func Segments(format string) ([]Segment, error) {
	segments, _, err := scan(format, 1)
	return segments, err
}

// scan does the work of Parse and reports the number of placeholders.
func scan(format string, capacity int) ([]Segment, int, error) {
	segments := make([]Segment, 0, capacity)

	var (
		inSpec bool
		pushed bool
		opened int
		closed int
		start  int
		open   int
		spec   Specifier
	)

	for i := 0; i < len(format); i++ {
		c := format[i]
		escaped := i > 0 && format[i-1] == escapeChar

		switch {
		case c == '{':
			if escaped {
				continue
			}
			if inSpec {
				return nil, 0, parseError(ErrBadSpecifier, format, i, "'{' inside specifier")
			}
			// The run before a placeholder is kept even when empty.
			if i > 0 {
				segments = append(segments, literalSegment(format, start, i))
			}
			inSpec, pushed = true, false
			open = i
			opened++

		case c == '}':
			if !inSpec {
				if escaped {
					continue
				}
				return nil, 0, parseError(ErrInvalidClosingBrace, format, i, "'}' without '{'")
			}
			if escaped {
				return nil, 0, parseError(ErrBadSpecifier, format, i, "escaped '}' inside specifier")
			}
			if !pushed {
				spec = DefaultSpecifier
			}
			segments = append(segments, specifierSegment(format, open, i, spec))
			inSpec = false
			closed++
			start = i + 1

		case inSpec && isDigit(c) && i == open+1:
			figures, end, err := significantFigures(format, i)
			if err != nil {
				return nil, 0, err
			}
			spec = Specifier{Kind: KindDefault, SignificantFigures: figures}
			pushed = true
			i = end - 1

		case inSpec:
			kind, ok := kindOf(c)
			if !ok {
				return nil, 0, parseError(ErrBadSpecifier, format, i, fmt.Sprintf("invalid character %q", c))
			}
			if pushed {
				if spec.Kind == KindDefault {
					return nil, 0, parseError(ErrBadSpecifier, format, i, "significant figures before kind")
				}
				return nil, 0, parseError(ErrBadSpecifier, format, i, fmt.Sprintf("second kind %q", c))
			}
			figures, end, err := significantFigures(format, i+1)
			if err != nil {
				return nil, 0, err
			}
			if kind == KindHexLower || kind == KindHexUpper {
				figures = 0
			}
			spec = Specifier{Kind: kind, SignificantFigures: figures}
			pushed = true
			i = end - 1
		}
	}

	if inSpec || opened != closed {
		return nil, 0, fmt.Errorf("%w: %d opened, %d closed in %q", ErrUnclosedSpecifier, opened, closed, format)
	}
	if start < len(format) {
		segments = append(segments, literalSegment(format, start, len(format)))
	}
	if len(segments) == 0 {
		segments = append(segments, literalSegment(format, 0, len(format)))
	}
	return segments, opened, nil
}

// significantFigures reads the digit run starting at from. It returns the
// value, or DefaultSignificantFigures when there are no digits, and the
// index just past the run.
func significantFigures(format string, from int) (int, int, error) {
	i := from
	n := 0
	for i < len(format) && isDigit(format[i]) {
		n = n*10 + int(format[i]-'0')
		if n > MaxSignificantFigures {
			return 0, 0, parseError(ErrBadSpecifier, format, from,
				fmt.Sprintf("more than %d significant figures", MaxSignificantFigures))
		}
		i++
	}
	if i == from {
		return DefaultSignificantFigures, i, nil
	}
	return n, i, nil
}

// Unescape replaces the brace escapes \{ and \} in literal text with the
// braces themselves.
func Unescape(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	var b Buffer
	appendUnescaped(&b, text)
	return b.String()
}

func appendUnescaped(dst *Buffer, text string) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == escapeChar && i+1 < len(text) && (text[i+1] == '{' || text[i+1] == '}') {
			continue
		}
		_ = dst.WriteByte(c)
	}
}
