package literal

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Value is a parsed numeric literal: an integer of any magnitude, a finite
// float64 or one of the special values inf, -inf and nan.
//
// Values are immutable. The zero Value is the decimal integer 0.
type Value struct {
	kind    Kind
	base    Base
	integer *apd.Decimal // never mutated once set
	float   float64
	special Special
}

// NewInteger returns the integer n tagged with base b.
func NewInteger(n int64, b Base) Value {
	return Value{kind: KindInteger, base: b, integer: apd.New(n, 0)}
}

// NewFloat returns f as a float value. Infinities and nan are stored as
// special values so that a float Value is always finite.
func NewFloat(f float64) Value {
	switch {
	case math.IsNaN(f):
		return NewSpecial(SpecialNotANumber)
	case math.IsInf(f, 1):
		return NewSpecial(SpecialPositiveInfinity)
	case math.IsInf(f, -1):
		return NewSpecial(SpecialNegativeInfinity)
	}
	return Value{kind: KindFloat, float: f}
}

func NewSpecial(s Special) Value {
	return Value{kind: KindSpecial, special: s}
}

// newBigInteger takes ownership of d.
func newBigInteger(d *apd.Decimal, b Base) Value {
	if d.IsZero() {
		d.Negative = false
	}
	return Value{kind: KindInteger, base: b, integer: d}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Base reports the radix an integer was written in. Floats and special
// values always report BaseDecimal.
func (v Value) Base() Base {
	if v.kind != KindInteger {
		return BaseDecimal
	}
	return v.base
}

// Special returns the special value held by v and whether v is special.
func (v Value) Special() (Special, bool) {
	return v.special, v.kind == KindSpecial
}

// IsNaN reports whether v is nan.
func (v Value) IsNaN() bool {
	return v.kind == KindSpecial && v.special == SpecialNotANumber
}

// IsInf reports whether v is an infinity, following math.IsInf: sign > 0
// checks +inf, sign < 0 checks -inf and sign == 0 checks either.
func (v Value) IsInf(sign int) bool {
	if v.kind != KindSpecial {
		return false
	}
	switch v.special {
	case SpecialPositiveInfinity:
		return sign >= 0
	case SpecialNegativeInfinity:
		return sign <= 0
	}
	return false
}

// Float64 converts v to the nearest float64.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindFloat:
		return v.float
	case KindSpecial:
		switch v.special {
		case SpecialPositiveInfinity:
			return math.Inf(1)
		case SpecialNegativeInfinity:
			return math.Inf(-1)
		}
		return math.NaN()
	}
	f, err := v.decimal().Float64()
	if err != nil {
		// apd reports overflow as an error; the sign still tells which infinity.
		if v.decimal().Negative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	return f
}

// Int64 returns v as an int64 when v is an integer that fits.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	n, err := v.decimal().Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

func (v Value) decimal() *apd.Decimal {
	if v.integer == nil {
		return apd.New(0, 0)
	}
	return v.integer
}

// rank orders the infinities around every finite value.
func (v Value) rank() int {
	switch {
	case v.IsInf(-1):
		return -1
	case v.IsInf(1):
		return 1
	}
	return 0
}

// Compare returns -1, 0 or +1 as a is numerically less than, equal to or
// greater than b. Integers and floats compare by value, so 2 and 2.0 are
// equal. Compare fails with ErrUnordered when either side is nan.
func Compare(a, b Value) (int, error) {
	if a.IsNaN() || b.IsNaN() {
		return 0, ErrUnordered
	}
	if ra, rb := a.rank(), b.rank(); ra != 0 || rb != 0 {
		return cmpInt(ra, rb), nil
	}
	if a.kind == KindFloat && b.kind == KindFloat {
		switch {
		case a.float < b.float:
			return -1, nil
		case a.float > b.float:
			return 1, nil
		}
		return 0, nil
	}
	return a.exact().Cmp(b.exact()), nil
}

// exact returns a finite v as a decimal with no rounding. A float64 is
// mant * 2^exp, which is exactly mant * 5^-exp * 10^exp when exp < 0.
func (v Value) exact() *apd.Decimal {
	if v.kind == KindInteger {
		return v.decimal()
	}
	frac, exp := math.Frexp(math.Abs(v.float))
	coeff := new(apd.BigInt).SetInt64(int64(frac * (1 << 53)))
	exp -= 53
	var d *apd.Decimal
	if exp >= 0 {
		coeff.Lsh(coeff, uint(exp))
		d = apd.NewWithBigInt(coeff, 0)
	} else {
		five := new(apd.BigInt).Exp(apd.NewBigInt(5), apd.NewBigInt(int64(-exp)), nil)
		coeff.Mul(coeff, five)
		d = apd.NewWithBigInt(coeff, int32(exp))
	}
	d.Negative = v.float < 0
	return d
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports numeric equality, ignoring kind and base. Unlike IEEE
// comparison, nan equals nan.
func Equal(a, b Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return a.IsNaN() && b.IsNaN()
	}
	c, err := Compare(a, b)
	return err == nil && c == 0
}

// Identical reports whether a and b are equal and were parsed as the same
// kind with the same base.
func Identical(a, b Value) bool {
	return a.Kind() == b.Kind() && a.Base() == b.Base() && Equal(a, b)
}
