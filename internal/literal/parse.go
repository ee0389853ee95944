package literal

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Parse classifies text against the numeric literal grammar and returns the
// value it denotes. Surrounding whitespace is ignored; anything else that is
// not a full match of one alternative is an error.
//
// Supported forms, in the order they are tried:
//   - inf, infinity, nan (any case, inf optionally signed)
//   - 0x1f, 0b101, 0o17 (optionally signed)
//   - 1e5, 1.5E-3, .5e2, 5.e1
//   - 1.5, 1., .5
//   - 42, -7, 007
//
// Every error is a *Error wrapping ErrEmpty, ErrNoGrammarMatched,
// ErrSignedNaN or ErrOutOfRange.
func Parse(text string) (Value, error) {
	v, _, err := ParseWithGrammar(text)
	return v, err
}

// ParseWithGrammar is Parse that also reports which alternative matched.
func ParseWithGrammar(text string) (Value, Grammar, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Value{}, 0, &Error{Err: ErrEmpty, Text: text}
	}
	m, ok := classify(trimmed)
	if !ok {
		return Value{}, 0, &Error{Err: ErrNoGrammarMatched, Text: text}
	}
	v, err := m.value(trimmed)
	if err != nil {
		return Value{}, m.grammar, &Error{Err: err, Text: text}
	}
	return v, m.grammar, nil
}

// Classify reports which grammar alternative text belongs to.
func Classify(text string) (Grammar, error) {
	_, g, err := ParseWithGrammar(text)
	return g, err
}

func (m match) value(text string) (Value, error) {
	switch m.grammar {
	case GrammarSpecial:
		if m.special == SpecialNotANumber && m.signed {
			return Value{}, ErrSignedNaN
		}
		return NewSpecial(m.special), nil
	case GrammarNonDecimalInteger, GrammarDecimalInteger:
		return integerValue(m.digits, m.base, m.negative)
	default:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			// Underflow rounds to zero like any other float rounding;
			// overflow would silently become inf.
			if !errors.Is(err, strconv.ErrRange) || f != 0 {
				return Value{}, ErrOutOfRange
			}
		}
		return NewFloat(f), nil
	}
}

// integerValue converts digits in base b to an exact integer. big.Int does
// the radix conversion; the magnitude is then held as an apd decimal.
func integerValue(digits string, b Base, negative bool) (Value, error) {
	n, ok := new(big.Int).SetString(digits, b.Radix())
	if !ok {
		return Value{}, ErrNoGrammarMatched
	}
	if negative {
		n.Neg(n)
	}
	d, _, err := apd.NewFromString(n.String())
	if err != nil {
		return Value{}, err
	}
	return newBigInteger(d, b), nil
}

// IsNumber reports whether text is any valid numeric literal.
func IsNumber(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// IsInteger reports whether text is a decimal or non-decimal integer.
func IsInteger(text string) bool {
	g, err := Classify(text)
	return err == nil && (g == GrammarDecimalInteger || g == GrammarNonDecimalInteger)
}

// IsFloat reports whether text is a basic or scientific float, or one of
// the special values.
func IsFloat(text string) bool {
	g, err := Classify(text)
	return err == nil && (g == GrammarBasicFloat || g == GrammarScientific || g == GrammarSpecial)
}

func IsScientific(text string) bool {
	g, err := Classify(text)
	return err == nil && g == GrammarScientific
}

func IsNonDecimal(text string) bool {
	g, err := Classify(text)
	return err == nil && g == GrammarNonDecimalInteger
}
