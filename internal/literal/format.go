package literal

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Format renders v in canonical form. Integers are plain decimal digits
// whatever base they were parsed from. Integral floats print their exact
// integer value with no decimal point. Other floats use the shortest digits
// that round-trip to the same float64. The special values are inf, -inf
// and nan.
//
// The result is always accepted by Parse.
func Format(v Value) string {
	switch v.kind {
	case KindFloat:
		return formatFloat(v.float)
	case KindSpecial:
		switch v.special {
		case SpecialPositiveInfinity:
			return "inf"
		case SpecialNegativeInfinity:
			return "-inf"
		}
		return "nan"
	}
	return v.decimal().Text('f')
}

// FormatBase is Format except that integers keep the base they were parsed
// from, e.g. 0x1a, -0b101 or 0o755. Hex digits are lower case.
func FormatBase(v Value) string {
	if v.kind != KindInteger || v.base == BaseDecimal {
		return Format(v)
	}
	n, ok := new(big.Int).SetString(v.decimal().Text('f'), 10)
	if !ok {
		return Format(v)
	}
	sign := ""
	if n.Sign() < 0 {
		sign = "-"
		n.Neg(n)
	}
	return sign + v.base.Prefix() + n.Text(v.base.Radix())
}

func (v Value) String() string {
	return Format(v)
}

// formatFloat keeps positional notation between 1e-6 and 1e21 and switches
// to an exponent outside that range. Integral floats are always positional.
func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) {
		if math.Abs(f) < 1<<53 {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		// Past 2^53 the shortest digits are padded with zeros that are not
		// the float's value.
		return Value{kind: KindFloat, float: f}.exact().Text('f')
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return trimExponent(strconv.FormatFloat(f, 'e', -1, 64))
}

// trimExponent turns strconv's "1.5e-07" into "1.5e-7".
func trimExponent(s string) string {
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := ""
	switch {
	case strings.HasPrefix(exp, "-"):
		sign, exp = "-", exp[1:]
	case strings.HasPrefix(exp, "+"):
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		return mantissa
	}
	return mantissa + "e" + sign + exp
}
