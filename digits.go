package braces

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const numPowersOf10 = 40

var powersOf10 = [numPowersOf10]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22, 1e23, 1e24, 1e25, 1e26, 1e27, 1e28, 1e29,
	1e30, 1e31, 1e32, 1e33, 1e34, 1e35, 1e36, 1e37, 1e38, 1e39,
}

// maxUint64Digit is the highest decimal position a uint64 can occupy.
const maxUint64Digit = 19

const twoTo63 = 1 << 63

const (
	ln2  float32 = 0.6931471806
	ln10 float32 = 2.302585093
)

func checkDigitPosition(pos int) {
	if pos < 0 || pos >= numPowersOf10 {
		panic(fmt.Sprintf("braces: decimal digit position %d out of range [0, %d)", pos, numPowersOf10))
	}
}

// digitAt returns the decimal digit of v at pos, counting from the least
// significant digit.
func digitAt(v uint64, pos int) uint8 {
	checkDigitPosition(pos)
	switch {
	case pos == 0:
		return uint8(v % 10)
	case pos > maxUint64Digit:
		return 0
	}
	return uint8((v / uint64(powersOf10[pos])) % 10)
}

// digitAtSigned is digitAt over the magnitude of v. The sign is the
// caller's business.
func digitAtSigned(v int64, pos int) uint8 {
	return digitAt(magnitude(v), pos)
}

func magnitude(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// hexDigitAt returns the nibble of v at pos, counting from the least
// significant nibble.
func hexDigitAt(v uint64, pos int) uint8 {
	if pos < 0 || pos >= 16 {
		panic(fmt.Sprintf("braces: hex digit position %d out of range [0, 16)", pos))
	}
	return uint8((v >> (uint(pos) * 4)) & 0xF)
}

func digitChar(d uint8) byte {
	if d > 9 {
		panic(fmt.Sprintf("braces: %d is not a decimal digit", d))
	}
	return '0' + d
}

func hexCharLower(d uint8) byte {
	switch {
	case d <= 9:
		return '0' + d
	case d <= 15:
		return 'a' + d - 10
	}
	panic(fmt.Sprintf("braces: %d is not a hex digit", d))
}

func hexCharUpper(d uint8) byte {
	switch {
	case d <= 9:
		return '0' + d
	case d <= 15:
		return 'A' + d - 10
	}
	panic(fmt.Sprintf("braces: %d is not a hex digit", d))
}

// wholeDigitAt returns the decimal digit at pos of x, a non-negative whole
// number held in a float. Values that fit in an int64 go through the
// integer path; larger ones are read from their exact decimal text, which
// also lifts the powers-of-ten bound on pos.
func wholeDigitAt(x float64, pos int) uint8 {
	if x < twoTo63 {
		return digitAt(uint64(x), pos)
	}
	if pos < 0 {
		checkDigitPosition(pos)
	}
	if math.IsInf(x, 0) {
		return 0
	}
	s := strconv.FormatFloat(x, 'f', 0, 64)
	if pos >= len(s) {
		return 0
	}
	return s[len(s)-1-pos] - '0'
}

const (
	mantissaBits      = 53
	maxFractionDigits = 1074
)

// needsExactDigits reports whether scaling |v| by 10^sig leaves the range
// where scale-then-truncate gives the true digits.
func needsExactDigits(v float64, sig int) bool {
	return math.Abs(v)*pow10(int64(sig)) >= twoTo63
}

// exactDecimal returns the integral digits of |v| and its first sig
// fractional digits, truncated. Every finite float64 has a terminating
// decimal expansion of at most maxFractionDigits places, so printing that
// many places involves no rounding.
func exactDecimal(v float64, sig int) (string, string) {
	_, exp2 := math.Frexp(v)
	places := max(min(mantissaBits-exp2, maxFractionDigits), sig, 0)
	whole, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'f', places, 64), ".")
	return whole, frac[:sig]
}

// digitBeforeDecimal returns the digit at pos of the integral part of |v|.
func digitBeforeDecimal(v float64, pos int) uint8 {
	return wholeDigitAt(math.Trunc(math.Abs(v)), pos)
}

// digitAfterDecimal returns fractional digit pos (0 is the tenths place)
// of |v| when printed with sigFigs digits after the point. The value is
// scaled by 10^sigFigs and truncated before the digit is picked, so no
// rounding takes place.
func digitAfterDecimal(v float64, pos, sigFigs int) uint8 {
	if pos < 0 || pos >= sigFigs {
		panic(fmt.Sprintf("braces: fractional digit %d out of range [0, %d)", pos, sigFigs))
	}
	checkDigitPosition(sigFigs)
	scaled := math.Trunc(math.Abs(v) * powersOf10[sigFigs])
	return wholeDigitAt(scaled, sigFigs-1-pos)
}

// digitsBeforeDecimalPoint reports the highest digit position to visit when
// printing the integral part of v, given its base-10 exponent.
func digitsBeforeDecimalPoint(v float64, exp int64) int {
	if math.Abs(v) < 10.0 {
		return 1
	}
	return int(exp)
}

// Subnormal values are scaled into the normal range before normalizing,
// since 10^exp underflows to zero below about 1e-323.
const (
	minNormal      = 0x1p-1022
	subnormalShift = 20
	subnormalScale = 1e20
)

func pow10(exp int64) float64 {
	if exp >= 0 && exp < numPowersOf10 {
		return powersOf10[exp]
	}
	return math.Pow10(int(exp))
}

// normalize splits v into a mantissa in [1, 10) and a base-10 exponent.
// The exponent is first estimated from the binary exponent, then corrected
// by at most a step either way. Zero, NaN and infinities come back as is
// with a zero exponent.
func normalize(v float64) (float64, int64) {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v, 0
	}
	if math.Abs(v) < minNormal {
		shifted, exp := normalize(v * subnormalScale)
		return shifted, exp - subnormalShift
	}
	_, exp2 := math.Frexp(v)
	exp := int64(float32(exp2) * ln2 / ln10)

	shifted := v / pow10(exp)
	for range 2 {
		switch a := math.Abs(shifted); {
		case a >= 10:
			exp++
		case a < 1:
			exp--
		default:
			return shifted, exp
		}
		shifted = v / pow10(exp)
	}
	return shifted, exp
}
