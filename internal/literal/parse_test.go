package literal

import (
	"errors"
	"math/big"
	"testing"
)

func TestParse_Values(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		grammar Grammar
		exp     Value
	}{
		{"hex", "0x1A", GrammarNonDecimalInteger, NewInteger(26, BaseHex)},
		{"hex_lower_signed", "-0x1a", GrammarNonDecimalInteger, NewInteger(-26, BaseHex)},
		{"binary", "0b101", GrammarNonDecimalInteger, NewInteger(5, BaseBinary)},
		{"octal", "0O755", GrammarNonDecimalInteger, NewInteger(493, BaseOctal)},
		{"decimal", "42", GrammarDecimalInteger, NewInteger(42, BaseDecimal)},
		{"decimal_leading_zeros", "0012", GrammarDecimalInteger, NewInteger(12, BaseDecimal)},
		{"decimal_plus", "+123", GrammarDecimalInteger, NewInteger(123, BaseDecimal)},
		{"negative_zero_integer", "-0", GrammarDecimalInteger, NewInteger(0, BaseDecimal)},
		{"basic_float", "-3.50", GrammarBasicFloat, NewFloat(-3.5)},
		{"leading_point", ".7", GrammarBasicFloat, NewFloat(0.7)},
		{"trailing_point", "1.", GrammarBasicFloat, NewFloat(1)},
		{"scientific", "1e10", GrammarScientific, NewFloat(1e10)},
		{"scientific_signed", "-6.78e+2", GrammarScientific, NewFloat(-678)},
		{"scientific_trailing_point", "5.e1", GrammarScientific, NewFloat(50)},
		{"scientific_upper", "1.0E+5", GrammarScientific, NewFloat(1e5)},
		{"inf", "inf", GrammarSpecial, NewSpecial(SpecialPositiveInfinity)},
		{"infinity_signed", "-Infinity", GrammarSpecial, NewSpecial(SpecialNegativeInfinity)},
		{"plus_inf", "+INF", GrammarSpecial, NewSpecial(SpecialPositiveInfinity)},
		{"nan", "nAn", GrammarSpecial, NewSpecial(SpecialNotANumber)},
		{"whitespace", "  0.5\t", GrammarBasicFloat, NewFloat(0.5)},
	}

	for _, tc := range cases {
		got, g, err := ParseWithGrammar(tc.in)
		if err != nil {
			t.Fatalf("%s: Parse(%q) returned error: %v", tc.name, tc.in, err)
		}
		if g != tc.grammar {
			t.Fatalf("%s: Parse(%q) grammar = %v, want %v", tc.name, tc.in, g, tc.grammar)
		}
		if !Identical(got, tc.exp) {
			t.Fatalf("%s: Parse(%q) = %v (%v/%v), want %v (%v/%v)",
				tc.name, tc.in, got, got.Kind(), got.Base(), tc.exp, tc.exp.Kind(), tc.exp.Base())
		}
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"abc", ErrNoGrammarMatched},
		{"1 2", ErrNoGrammarMatched},
		{"1_000", ErrNoGrammarMatched},
		{"0x", ErrNoGrammarMatched},
		{"0b102", ErrNoGrammarMatched},
		{"0x1.8", ErrNoGrammarMatched},
		{"0x1p4", ErrNoGrammarMatched},
		{".", ErrNoGrammarMatched},
		{"1..2", ErrNoGrammarMatched},
		{"e5", ErrNoGrammarMatched},
		{"--1", ErrNoGrammarMatched},
		{".inf", ErrNoGrammarMatched},
		{"+nan", ErrSignedNaN},
		{"-NaN", ErrSignedNaN},
		{"1e999", ErrOutOfRange},
		{"-1.5e400", ErrOutOfRange},
	}

	for _, tc := range cases {
		_, err := Parse(tc.in)
		if err == nil {
			t.Fatalf("expected Parse(%q) to return error, got nil", tc.in)
		}
		if !errors.Is(err, tc.err) {
			t.Fatalf("Parse(%q) error = %v, want %v", tc.in, err, tc.err)
		}
		var lerr *Error
		if !errors.As(err, &lerr) || lerr.Text != tc.in {
			t.Fatalf("Parse(%q) error %v does not carry the original text", tc.in, err)
		}
	}
}

func TestParse_Underflow(t *testing.T) {
	v, err := Parse("1e-400")
	if err != nil {
		t.Fatalf("Parse(1e-400) returned error: %v", err)
	}
	if v.Kind() != KindFloat || v.Float64() != 0 {
		t.Fatalf("Parse(1e-400) = %v (%v), want float 0", v, v.Kind())
	}
}

func TestParse_BigInteger(t *testing.T) {
	in := "0x" + "ffffffffffffffffffffffffffffffff"
	v, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", in, err)
	}
	want, _ := new(big.Int).SetString("ffffffffffffffffffffffffffffffff", 16)
	if got := Format(v); got != want.String() {
		t.Fatalf("Format(Parse(%q)) = %q, want %q", in, got, want.String())
	}
	if _, ok := v.Int64(); ok {
		t.Fatalf("Int64() of %q reported ok", in)
	}
	if got := FormatBase(v); got != in {
		t.Fatalf("FormatBase = %q, want %q", got, in)
	}
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		in                                     string
		number, integer, float, sci, nonDecimal bool
	}{
		{"0", true, true, false, false, false},
		{" 42 ", true, true, false, false, false},
		{"0x1a", true, true, false, false, true},
		{"-0b101", true, true, false, false, true},
		{"3.14", true, false, true, false, false},
		{"5.", true, false, true, false, false},
		{"1e-10", true, false, true, true, false},
		{"56E67", true, false, true, true, false},
		{"inf", true, false, true, false, false},
		{"NaN", true, false, true, false, false},
		{"-nan", false, false, false, false, false},
		{"abc", false, false, false, false, false},
		{"", false, false, false, false, false},
	}

	for _, tc := range cases {
		if got := IsNumber(tc.in); got != tc.number {
			t.Fatalf("IsNumber(%q) = %v, want %v", tc.in, got, tc.number)
		}
		if got := IsInteger(tc.in); got != tc.integer {
			t.Fatalf("IsInteger(%q) = %v, want %v", tc.in, got, tc.integer)
		}
		if got := IsFloat(tc.in); got != tc.float {
			t.Fatalf("IsFloat(%q) = %v, want %v", tc.in, got, tc.float)
		}
		if got := IsScientific(tc.in); got != tc.sci {
			t.Fatalf("IsScientific(%q) = %v, want %v", tc.in, got, tc.sci)
		}
		if got := IsNonDecimal(tc.in); got != tc.nonDecimal {
			t.Fatalf("IsNonDecimal(%q) = %v, want %v", tc.in, got, tc.nonDecimal)
		}
	}
}

func TestClassify_Names(t *testing.T) {
	g, err := Classify("0o17")
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if g.String() != "non-decimal-integer" {
		t.Fatalf("Classify(0o17).String() = %q", g.String())
	}
	parsed, err := GrammarString("basic-float")
	if err != nil || parsed != GrammarBasicFloat {
		t.Fatalf("GrammarString(basic-float) = %v, %v", parsed, err)
	}
}
