package interval

import (
	"errors"
	"fmt"

	"github.com/vipcxj/numeral/internal/literal"
)

// Bound is one end of an Interval.
type Bound struct {
	Value literal.Value
}

// Interval is a checked pair of bounds. The zero Interval is the empty
// open interval (0 .. 0); use New or Parse to build anything else.
type Interval struct {
	lower          Bound
	upper          Bound
	lowerInclusive bool
	upperInclusive bool
}

// New validates the bounds and returns the interval they describe.
//
// Rules:
//   - neither bound may be nan
//   - lower must not be greater than upper
//   - an infinite bound must be open, so [-inf .. 0] and (0 .. inf] are rejected
//
// Equal bounds are allowed with any brackets; IsEmpty reports whether such
// an interval holds anything.
func New(lower, upper literal.Value, lowerInclusive, upperInclusive bool) (Interval, error) {
	if lower.IsNaN() {
		return Interval{}, &Error{Err: ErrUnorderedBounds, Fragment: "nan", Detail: "lower bound is nan"}
	}
	if upper.IsNaN() {
		return Interval{}, &Error{Err: ErrUnorderedBounds, Fragment: "nan", Detail: "upper bound is nan"}
	}
	c, err := literal.Compare(lower, upper)
	if err != nil {
		return Interval{}, &Error{Err: ErrUnorderedBounds, Detail: err.Error()}
	}
	if c > 0 {
		return Interval{}, &Error{
			Err:      ErrUnorderedBounds,
			Fragment: literal.Format(lower),
			Detail:   fmt.Sprintf("%s > %s", literal.Format(lower), literal.Format(upper)),
		}
	}
	if lowerInclusive && lower.IsInf(0) {
		return Interval{}, &Error{
			Err:      ErrUnboundedMustBeOpen,
			Fragment: literal.Format(lower),
			Detail:   "lower bound " + literal.Format(lower),
		}
	}
	if upperInclusive && upper.IsInf(0) {
		return Interval{}, &Error{
			Err:      ErrUnboundedMustBeOpen,
			Fragment: literal.Format(upper),
			Detail:   "upper bound " + literal.Format(upper),
		}
	}
	return Interval{
		lower:          Bound{Value: lower},
		upper:          Bound{Value: upper},
		lowerInclusive: lowerInclusive,
		upperInclusive: upperInclusive,
	}, nil
}

// MustNew is New that panics on error. It is meant for fixed intervals in
// tests and package-level variables.
func MustNew(lower, upper literal.Value, lowerInclusive, upperInclusive bool) Interval {
	iv, err := New(lower, upper, lowerInclusive, upperInclusive)
	if err != nil {
		panic(err)
	}
	return iv
}

// Unbounded returns (-inf .. inf).
func Unbounded() Interval {
	return MustNew(
		literal.NewSpecial(literal.SpecialNegativeInfinity),
		literal.NewSpecial(literal.SpecialPositiveInfinity),
		false, false,
	)
}

func (r Interval) Lower() Bound         { return r.lower }
func (r Interval) Upper() Bound         { return r.upper }
func (r Interval) LowerInclusive() bool { return r.lowerInclusive }
func (r Interval) UpperInclusive() bool { return r.upperInclusive }

func (r Interval) LowerBracket() string {
	if r.lowerInclusive {
		return "["
	}
	return "("
}

func (r Interval) UpperBracket() string {
	if r.upperInclusive {
		return "]"
	}
	return ")"
}

// Contains reports whether v lies between the bounds, honoring inclusivity.
func (r Interval) Contains(v literal.Value) bool {
	if v.IsNaN() {
		return false
	}
	lo, err := literal.Compare(r.lower.Value, v)
	if err != nil {
		return false
	}
	hi, err := literal.Compare(v, r.upper.Value)
	if err != nil {
		return false
	}
	if lo > 0 || (lo == 0 && !r.lowerInclusive) {
		return false
	}
	if hi > 0 || (hi == 0 && !r.upperInclusive) {
		return false
	}
	return true
}

// IsEmpty reports whether no value satisfies the interval. That only happens
// when the bounds are equal and at least one side is open.
func (r Interval) IsEmpty() bool {
	return literal.Equal(r.lower.Value, r.upper.Value) && !(r.lowerInclusive && r.upperInclusive)
}

// IsSingleValue reports whether the interval is [n .. n].
func (r Interval) IsSingleValue() bool {
	return literal.Equal(r.lower.Value, r.upper.Value) && r.lowerInclusive && r.upperInclusive
}

// IsIntegral reports whether both bounds were written as integers.
func (r Interval) IsIntegral() bool {
	return r.lower.Value.Kind() == literal.KindInteger && r.upper.Value.Kind() == literal.KindInteger
}

func (r Interval) IsLowerBounded() bool {
	return !r.lower.Value.IsInf(-1)
}

func (r Interval) IsUpperBounded() bool {
	return !r.upper.Value.IsInf(1)
}

func (r Interval) IsUnbounded() bool {
	return !r.IsLowerBounded() && !r.IsUpperBounded()
}

// Equal reports whether a and b have numerically equal bounds and the same
// brackets.
func Equal(a, b Interval) bool {
	return a.lowerInclusive == b.lowerInclusive &&
		a.upperInclusive == b.upperInclusive &&
		literal.Equal(a.lower.Value, b.lower.Value) &&
		literal.Equal(a.upper.Value, b.upper.Value)
}

// withInput stamps the caller's text on errors coming out of New.
func withInput(err error, input string) error {
	var ierr *Error
	if errors.As(err, &ierr) && ierr.Input == "" {
		ierr.Input = input
	}
	return err
}
