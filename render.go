package braces

import (
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

// Unsigned is the set of unsigned integer types accepted by [Uint].
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the set of signed integer types accepted by [Int].
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Floating is the set of floating point types accepted by [Float].
type Floating interface {
	~float32 | ~float64
}

// Digit budgets per integer width: index 0 is 1 byte, 1 is 2 bytes, 2 is 4
// bytes and 3 is 8 bytes.
var (
	unsignedDecimalDigits = [4]int{3, 5, 10, 20}
	signedDecimalDigits   = [4]int{4, 6, 11, 20}
	hexDigits             = [4]int{2, 4, 8, 16}
)

const (
	charDecimalDigits = 3
	charHexDigits     = 2
	exponentDigits    = 3
	pointerHexDigits  = bits.UintSize / 4
)

func widthIndex(size uintptr) int {
	switch size {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 3
	}
}

func illegal(typ string, kind Kind) error {
	return fmt.Errorf("%w: cannot format %s as %s", ErrIllegalSpecifier, typ, kind)
}

// appendDecimalUnsigned writes v over maxDigits positions, most significant
// first, dropping leading zeros but always writing at least one digit.
func appendDecimalUnsigned(dst *Buffer, v uint64, maxDigits int) {
	nonZero := false
	for pos := maxDigits - 1; pos >= 0; pos-- {
		d := digitAt(v, pos)
		if nonZero || d != 0 {
			_ = dst.WriteByte(digitChar(d))
			nonZero = true
		}
	}
	if !nonZero {
		_ = dst.WriteByte('0')
	}
}

func appendDecimalSigned(dst *Buffer, v int64, maxDigits int) {
	if v < 0 {
		_ = dst.WriteByte('-')
	}
	appendDecimalUnsigned(dst, magnitude(v), maxDigits)
}

// appendHex writes the 0x or 0X prefix followed by v over digits nibble
// positions, with the same leading zero rule as the decimal writers.
func appendHex(dst *Buffer, v uint64, digits int, kind Kind) {
	toChar := hexCharLower
	if kind == KindHexUpper {
		_, _ = dst.WriteString("0X")
		toChar = hexCharUpper
	} else {
		_, _ = dst.WriteString("0x")
	}
	nonZero := false
	for pos := digits - 1; pos >= 0; pos-- {
		d := hexDigitAt(v, pos)
		if nonZero || d != 0 {
			_ = dst.WriteByte(toChar(d))
			nonZero = true
		}
	}
	if !nonZero {
		_ = dst.WriteByte('0')
	}
}

// --- bool ---

type boolValue bool

// Bool returns a Formatter for b. Only the default specifier is accepted.
func Bool(b bool) Formatter { return boolValue(b) }

func (b boolValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	if spec.Kind != KindDefault {
		return nil, illegal("bool", spec.Kind)
	}
	s := "false"
	if b {
		s = "true"
	}
	out := NewBuffer(len(s), alloc)
	_, _ = out.WriteString(s)
	return out, nil
}

// --- char ---

type charValue byte

// Char returns a Formatter for a single byte character. The default and
// debug specifiers print the character itself; d and x/X print its code.
func Char(c byte) Formatter { return charValue(c) }

func (c charValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	out := NewBuffer(charHexDigits+2, alloc)
	switch spec.Kind {
	case KindDefault, KindDebug:
		_ = out.WriteByte(byte(c))
	case KindDecimal:
		appendDecimalUnsigned(out, uint64(c), charDecimalDigits)
	case KindHexLower, KindHexUpper:
		appendHex(out, uint64(c), charHexDigits, spec.Kind)
	default:
		out.Free()
		return nil, illegal("char", spec.Kind)
	}
	return out, nil
}

// --- integers ---

type unsignedValue struct {
	v     uint64
	width int
}

// Uint returns a Formatter for an unsigned integer. Hex output covers as
// many nibbles as the type holds.
func Uint[T Unsigned](v T) Formatter {
	return newUnsigned(uint64(v), unsafe.Sizeof(v))
}

func newUnsigned(v uint64, size uintptr) unsignedValue {
	return unsignedValue{v: v, width: widthIndex(size)}
}

func (u unsignedValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	out := NewBuffer(hexDigits[u.width]+2, alloc)
	switch spec.Kind {
	case KindDefault, KindDecimal, KindDebug:
		appendDecimalUnsigned(out, u.v, unsignedDecimalDigits[u.width])
	case KindHexLower, KindHexUpper:
		appendHex(out, u.v, hexDigits[u.width], spec.Kind)
	default:
		out.Free()
		return nil, illegal(fmt.Sprintf("u%d", 8<<u.width), spec.Kind)
	}
	return out, nil
}

type signedValue struct {
	v     int64
	width int
}

// Int returns a Formatter for a signed integer. Hex output shows the two's
// complement bit pattern of the value at its own width.
func Int[T Signed](v T) Formatter {
	return newSigned(int64(v), unsafe.Sizeof(v))
}

func newSigned(v int64, size uintptr) signedValue {
	return signedValue{v: v, width: widthIndex(size)}
}

func (s signedValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	out := NewBuffer(signedDecimalDigits[s.width]+1, alloc)
	switch spec.Kind {
	case KindDefault, KindDecimal, KindDebug:
		appendDecimalSigned(out, s.v, signedDecimalDigits[s.width])
	case KindHexLower, KindHexUpper:
		appendHex(out, uint64(s.v), hexDigits[s.width], spec.Kind)
	default:
		out.Free()
		return nil, illegal(fmt.Sprintf("i%d", 8<<s.width), spec.Kind)
	}
	return out, nil
}

// --- floating point ---

type floatValue float64

// Float returns a Formatter for a floating point value. The default, e and
// debug specifiers print scientific notation; d prints fixed point.
func Float[T Floating](v T) Formatter { return floatValue(v) }

func (f floatValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	switch spec.Kind {
	case KindDefault, KindDecimal, KindScientific, KindDebug:
	default:
		return nil, illegal("float", spec.Kind)
	}
	sig := spec.SignificantFigures
	if sig < 0 || sig > MaxSignificantFigures {
		return nil, fmt.Errorf("%w: %d significant figures", ErrIllegalSpecifier, sig)
	}

	v := float64(f)
	out := NewBuffer(sig+8, alloc)
	switch {
	case math.IsNaN(v):
		_, _ = out.WriteString("NaN")
		return out, nil
	case math.IsInf(v, 1):
		_, _ = out.WriteString("+Inf")
		return out, nil
	case math.IsInf(v, -1):
		_, _ = out.WriteString("-Inf")
		return out, nil
	}

	shifted, exp := normalize(v)
	if spec.Kind == KindDecimal {
		appendFixed(out, v, exp, sig)
	} else {
		appendScientific(out, shifted, exp, sig)
	}
	return out, nil
}

// appendScientific writes [-]D.<sig digits>E[-]<exponent>. The mantissa is
// expected to be normalized to [1, 10).
func appendScientific(dst *Buffer, shifted float64, exp int64, sig int) {
	if shifted < 0 {
		_ = dst.WriteByte('-')
	}
	if needsExactDigits(shifted, sig) {
		appendExact(dst, shifted, sig)
	} else {
		_ = dst.WriteByte(digitChar(digitBeforeDecimal(shifted, 0)))
		_ = dst.WriteByte('.')
		for i := range sig {
			_ = dst.WriteByte(digitChar(digitAfterDecimal(shifted, i, sig)))
		}
	}
	_ = dst.WriteByte('E')
	appendDecimalSigned(dst, exp, exponentDigits)
}

// appendFixed writes [-]<integral digits>.<sig digits>.
func appendFixed(dst *Buffer, v float64, exp int64, sig int) {
	if v < 0 {
		_ = dst.WriteByte('-')
	}
	if needsExactDigits(v, sig) {
		appendExact(dst, v, sig)
		return
	}
	top := digitsBeforeDecimalPoint(v, exp)
	nonZero := false
	for pos := top; pos >= 0; pos-- {
		d := digitBeforeDecimal(v, pos)
		if nonZero || d != 0 {
			_ = dst.WriteByte(digitChar(d))
			nonZero = true
		}
	}
	if !nonZero {
		_ = dst.WriteByte('0')
	}
	_ = dst.WriteByte('.')
	for i := range sig {
		_ = dst.WriteByte(digitChar(digitAfterDecimal(v, i, sig)))
	}
}

// appendExact writes |v| as <integral digits>.<sig digits> from its exact
// decimal expansion.
func appendExact(dst *Buffer, v float64, sig int) {
	whole, frac := exactDecimal(v, sig)
	_, _ = dst.WriteString(whole)
	_ = dst.WriteByte('.')
	_, _ = dst.WriteString(frac)
}

// --- pointers ---

type pointerValue uintptr

// Pointer returns a Formatter for an address. The default, x and debug
// specifiers print lower case hex, X prints upper case.
func Pointer(p uintptr) Formatter { return pointerValue(p) }

// PointerOf is [Pointer] for an unsafe.Pointer.
func PointerOf(p unsafe.Pointer) Formatter { return pointerValue(uintptr(p)) }

func (p pointerValue) Format(spec Specifier, alloc Allocator) (*Buffer, error) {
	kind := spec.Kind
	switch kind {
	case KindDefault, KindDebug:
		kind = KindHexLower
	case KindHexLower, KindHexUpper:
	default:
		return nil, illegal("pointer", spec.Kind)
	}
	out := NewBuffer(pointerHexDigits+2, alloc)
	appendHex(out, uint64(p), pointerHexDigits, kind)
	return out, nil
}

// --- strings ---

type stringValue string

// String returns a Formatter that copies s verbatim whatever the specifier.
func String(s string) Formatter { return stringValue(s) }

func (s stringValue) Format(_ Specifier, alloc Allocator) (*Buffer, error) {
	out := NewBuffer(len(s), alloc)
	_, _ = out.WriteString(string(s))
	return out, nil
}
