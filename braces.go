package braces

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrBadSpecifier            = errors.New("bad format specifier")
	ErrInvalidClosingBrace     = errors.New("invalid closing brace location")
	ErrUnclosedSpecifier       = errors.New("unclosed format specifier")
	ErrMoreSpecifiersThanArgs  = errors.New("more format specifiers than arguments")
	ErrFewerSpecifiersThanArgs = errors.New("fewer format specifiers than arguments")
	ErrIllegalSpecifier        = errors.New("illegal specifier for type")
	ErrUnsupportedArgument     = errors.New("unsupported argument type")
)

// Kind selects how an argument is rendered.
type Kind byte

const (
	KindDefault    Kind = 0
	KindDecimal    Kind = 'd'
	KindHexLower   Kind = 'x'
	KindHexUpper   Kind = 'X'
	KindScientific Kind = 'e'
	KindDebug      Kind = 'D'
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindDecimal:
		return "decimal"
	case KindHexLower:
		return "hex"
	case KindHexUpper:
		return "HEX"
	case KindScientific:
		return "scientific"
	case KindDebug:
		return "debug"
	default:
		return fmt.Sprintf("Kind(%q)", byte(k))
	}
}

const (
	// DefaultSignificantFigures is the number of digits printed after the
	// decimal point when a specifier does not name one.
	DefaultSignificantFigures = 3

	// MaxSignificantFigures is the largest count a specifier may request.
	MaxSignificantFigures = numPowersOf10 - 1
)

// Specifier describes how one argument should be rendered.
// SignificantFigures only matters for floating point values.
type Specifier struct {
	Kind               Kind
	SignificantFigures int
}

// DefaultSpecifier is the specifier produced by an empty "{}".
var DefaultSpecifier = Specifier{Kind: KindDefault, SignificantFigures: DefaultSignificantFigures}

// Formatter renders a value for one specifier. The returned buffer is
// owned by the caller, who frees it once the text has been consumed.
//
// Implement Formatter to make a type usable as a [Format] argument:
//
//	func (p Point) Format(spec braces.Specifier, alloc braces.Allocator) (*braces.Buffer, error) {
//		return braces.FormatBuffer(alloc, "({}, {})", p.X, p.Y)
//	}
type Formatter interface {
	Format(spec Specifier, alloc Allocator) (*Buffer, error)
}

// Render formats f with spec using the default allocator.
func Render(f Formatter, spec Specifier) (string, error) {
	b, err := f.Format(spec, DefaultAllocator())
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", nil
	}
	defer b.Free()
	return b.String(), nil
}

// specifierPadding is the capacity reserved per specifier when sizing the
// output buffer. The buffer still grows past it as needed.
const specifierPadding = 10

// Format renders args into format and returns the result.
//
//	s, err := braces.Format("Values: [{}, {}]", 3, 4) // "Values: [3, 4]"
//
// Either the whole string is returned or an error; output is never partial.
func Format(format string, args ...any) (string, error) {
	return FormatWith(DefaultAllocator(), format, args...)
}

// FormatWith is [Format] with an explicit allocator for the intermediate
// and output buffers.
func FormatWith(alloc Allocator, format string, args ...any) (string, error) {
	b, err := FormatBuffer(alloc, format, args...)
	if err != nil {
		return "", err
	}
	s := b.String()
	b.Free()
	return s, nil
}

// FormatBuffer renders args into format and hands the output buffer to the
// caller. It is the building block for printers and for Formatter
// implementations that compose other values. A nil alloc means
// [DefaultAllocator].
func FormatBuffer(alloc Allocator, format string, args ...any) (*Buffer, error) {
	if alloc == nil {
		alloc = DefaultAllocator()
	}

	segments, err := Parse(format, len(args))
	if err != nil {
		return nil, err
	}

	formatters := make([]Formatter, len(args))
	for i, arg := range args {
		f, err := argument(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		formatters[i] = f
	}

	size := 0
	for _, seg := range segments {
		if seg.Type == SegmentLiteral {
			size += len(seg.Text)
		} else {
			size += specifierPadding
		}
	}

	out := NewBuffer(size, alloc)
	next := 0
	for _, seg := range segments {
		switch seg.Type {
		case SegmentLiteral:
			appendUnescaped(out, seg.Text)
		case SegmentSpecifier:
			rendered, err := formatters[next].Format(seg.Spec, alloc)
			if err != nil {
				out.Free()
				return nil, fmt.Errorf("argument %d: %w", next, err)
			}
			next++
			if rendered != nil {
				out.Append(rendered)
				rendered.Free()
			}
		}
	}
	return out, nil
}
