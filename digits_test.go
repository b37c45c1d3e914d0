package braces

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitAt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    uint64
		pos  int
		want uint8
	}{
		{12345, 0, 5},
		{12345, 1, 4},
		{12345, 4, 1},
		{12345, 5, 0},
		{math.MaxUint64, 19, 1},
		{math.MaxUint64, 0, 5},
		{math.MaxUint64, 25, 0},
		{0, 3, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, digitAt(tt.v, tt.pos), "digitAt(%d, %d)", tt.v, tt.pos)
	}
}

func TestDigitAtOutOfRangePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { digitAt(1, numPowersOf10) })
	assert.Panics(t, func() { digitAt(1, -1) })
}

func TestDigitAtSigned(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint8(3), digitAtSigned(-123, 0))
	assert.Equal(t, uint8(1), digitAtSigned(-123, 2))
	assert.Equal(t, uint8(8), digitAtSigned(math.MinInt64, 0))
	assert.Equal(t, uint8(9), digitAtSigned(math.MinInt64, 18))
}

func TestHexDigitAt(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint8(0xD), hexDigitAt(0xABCD, 0))
	assert.Equal(t, uint8(0xA), hexDigitAt(0xABCD, 3))
	assert.Equal(t, uint8(0), hexDigitAt(0xABCD, 4))
	assert.Equal(t, uint8(0xF), hexDigitAt(math.MaxUint64, 15))
	assert.Panics(t, func() { hexDigitAt(1, 16) })
}

func TestDigitChars(t *testing.T) {
	t.Parallel()
	assert.Equal(t, byte('0'), digitChar(0))
	assert.Equal(t, byte('9'), digitChar(9))
	assert.Equal(t, byte('a'), hexCharLower(10))
	assert.Equal(t, byte('f'), hexCharLower(15))
	assert.Equal(t, byte('7'), hexCharUpper(7))
	assert.Equal(t, byte('F'), hexCharUpper(15))

	assert.Panics(t, func() { digitChar(10) })
	assert.Panics(t, func() { hexCharLower(16) })
	assert.Panics(t, func() { hexCharUpper(16) })
}

func TestDigitsBeforeDecimalPoint(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, digitsBeforeDecimalPoint(9.99, 0))
	assert.Equal(t, 1, digitsBeforeDecimalPoint(-5, 0))
	assert.Equal(t, 2, digitsBeforeDecimalPoint(123.4, 2))
	assert.Equal(t, 3, digitsBeforeDecimalPoint(-1234.5, 3))
}

func TestDigitBeforeDecimal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint8(3), digitBeforeDecimal(123.9, 0))
	assert.Equal(t, uint8(1), digitBeforeDecimal(-123.9, 2))
	assert.Equal(t, uint8(0), digitBeforeDecimal(0.75, 0))
	// Beyond int64 range the float path takes over.
	assert.Equal(t, uint8(1), digitBeforeDecimal(1e30, 30))
	assert.Equal(t, uint8(0), digitBeforeDecimal(1e30, 31))
}

func TestDigitBeforeDecimalExact(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{1e20, 1e300, math.MaxFloat64} {
		want := strconv.FormatFloat(v, 'f', 0, 64)
		for pos := range len(want) {
			assert.Equal(t, want[len(want)-1-pos]-'0', digitBeforeDecimal(v, pos), "digit %d of %s", pos, want)
		}
		assert.Zero(t, digitBeforeDecimal(v, len(want)))
	}
}

func TestExactDecimal(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v     float64
		sig   int
		whole string
		frac  string
	}{
		"no figures":    {v: 1e20, sig: 0, whole: "100000000000000000000", frac: ""},
		"integer":       {v: 1e20, sig: 3, whole: "100000000000000000000", frac: "000"},
		"truncates":     {v: 0.1, sig: 20, whole: "0", frac: "10000000000000000555"},
		"negative":      {v: -2.5, sig: 2, whole: "2", frac: "50"},
		"smallest":      {v: 5e-324, sig: 5, whole: "0", frac: "00000"},
		"long fraction": {v: 123456789.123, sig: 12, whole: "123456789", frac: "122999995946"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			whole, frac := exactDecimal(tt.v, tt.sig)
			assert.Equal(t, tt.whole, whole)
			assert.Equal(t, tt.frac, frac)
		})
	}
}

func TestNeedsExactDigits(t *testing.T) {
	t.Parallel()
	assert.False(t, needsExactDigits(3.14159, 3))
	assert.False(t, needsExactDigits(1e15, 3))
	assert.True(t, needsExactDigits(1e20, 0))
	assert.True(t, needsExactDigits(1.0, 39))
	assert.True(t, needsExactDigits(-1e17, 3))
}

func TestDigitAfterDecimal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint8(1), digitAfterDecimal(3.14159, 0, 2))
	assert.Equal(t, uint8(4), digitAfterDecimal(3.14159, 1, 2))
	assert.Equal(t, uint8(5), digitAfterDecimal(0.5, 0, 3))
	assert.Equal(t, uint8(0), digitAfterDecimal(0.5, 2, 3))
	assert.Equal(t, uint8(5), digitAfterDecimal(-2.25, 1, 2))
	assert.Panics(t, func() { digitAfterDecimal(1.5, 2, 2) })
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v        float64
		mantissa float64
		exp      int64
	}{
		{1000, 1, 3},
		{999, 9.99, 2},
		{3.5, 3.5, 0},
		{-2.5, -2.5, 0},
		{0.01, 1, -2},
		{0.5, 5, -1},
		{1e20, 1, 20},
	}
	for _, tt := range tests {
		shifted, exp := normalize(tt.v)
		assert.Equal(t, tt.exp, exp, "exponent of %v", tt.v)
		assert.InDelta(t, tt.mantissa, shifted, 1e-9, "mantissa of %v", tt.v)
	}

	shifted, exp := normalize(0)
	assert.Zero(t, shifted)
	assert.Zero(t, exp)
}

func TestNormalizeRange(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{1, 9.75, 10, 12.5, 1024, 8191, 8192, 0.125, 1e-7, 6.02e23} {
		shifted, _ := normalize(v)
		assert.GreaterOrEqual(t, shifted, 1.0, "normalize(%v)", v)
		assert.Less(t, shifted, 10.0, "normalize(%v)", v)
	}
}

func TestNormalizeSubnormal(t *testing.T) {
	t.Parallel()
	shifted, exp := normalize(5e-324)
	assert.Equal(t, int64(-324), exp)
	assert.InDelta(t, 4.94, shifted, 0.01)
}
