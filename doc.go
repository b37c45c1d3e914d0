// Package braces formats values into strings using brace placeholders.
//
// The central entry points are [Format] and [FormatWith], which accept a
// format string and variadic arguments:
//
//	s, err := braces.Format("Values: [{}, {}]", 3, 4)   // "Values: [3, 4]"
//	s, err := braces.Format("{x} {X}", uint8(255), 255) // "0xff 0XFF"
//	s, err := braces.Format("pi is {d2}", math.Pi)       // "pi is 3.14"
//
// # Format Strings
//
// Literal text is copied as is. A placeholder is a pair of braces holding
// an optional kind character and, for floating point kinds, an optional
// count of digits to print after the decimal point:
//
//   - {}, {<n>}: the default rendering for the argument's type
//   - {d}, {d<n>}: decimal; fixed point with n digits for floats
//   - {x}, {X}: lower and upper case hex with a 0x or 0X prefix
//   - {e}, {e<n>}: scientific notation with n digits after the point
//   - {D}, {D<n>}: debug; currently the same as the default
//
// The digit count defaults to [DefaultSignificantFigures]. A brace is
// written literally by escaping it with a backslash: "\{" and "\}".
//
// # Types
//
// Every argument is resolved to a [Formatter] before formatting starts.
// Builtin types are resolved automatically:
//
//   - bool: "true" or "false"; only {} is accepted
//   - signed and unsigned integers: decimal or hex at the width of the type
//   - float32 and float64: scientific by default, fixed point with {d}
//   - uintptr, unsafe.Pointer and other pointers: hex address
//   - string, []byte, error and [fmt.Stringer]: verbatim, whatever the kind
//
// Use [Char] to print a byte as a character, and [JSON] or [YAML] to embed
// structured values. Any type can take part by implementing [Formatter].
// A kind that does not apply to a type, such as {x} for a float, fails
// with [ErrIllegalSpecifier] rather than printing something surprising.
//
// # Allocation
//
// Buffers come from an [Allocator]. [Format] uses [DefaultAllocator];
// pass a [PoolAllocator] to [FormatWith] to recycle buffers across calls.
// [FormatBuffer] returns the output [Buffer] itself so callers can hand its
// storage back with [Buffer.Free].
//
// # Printing
//
// [Print], [Println], [Eprint], [Eprintln], [Fprint] and [Fprintln] write
// the formatted text. [FprintSeq] and [FprintChan] format a stream of
// values, one line per item.
//
// # Errors
//
// Format strings are validated in full before any argument is rendered,
// and a failed call never returns partial output. The package exports
// sentinel errors for programmatic handling:
//
//   - [ErrBadSpecifier]: invalid character or structure inside braces
//   - [ErrInvalidClosingBrace]: "}" with no open placeholder
//   - [ErrUnclosedSpecifier]: "{" with no matching "}"
//   - [ErrMoreSpecifiersThanArgs]: more placeholders than arguments
//   - [ErrFewerSpecifiersThanArgs]: fewer placeholders than arguments
//   - [ErrIllegalSpecifier]: kind does not apply to the argument's type
//   - [ErrUnsupportedArgument]: argument type has no renderer
//
// A single argument with no placeholders is accepted and ignored.
package braces
