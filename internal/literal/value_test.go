package literal

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) Value {
	t.Helper()
	v, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", text, err)
	}
	return v
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		exp  int
	}{
		{"1", "2", -1},
		{"2", "2.0", 0},
		{"0x10", "16", 0},
		{"0b11", "2.5", 1},
		{"-1", "-0.5", -1},
		{"0", "-0.0", 0},
		{"1e21", "1000000000000000000000", 0},
		{"18446744073709551616", "1.8446744073709552e19", 0},
		{"18446744073709551617", "1.8446744073709552e19", 1},
		{"9007199254740993", "9007199254740992.0", 1},
		{"0.1", "0.10000000000000001", 0},
		{"-inf", "-1e308", -1},
		{"inf", "0x" + "ffffffffffffffffffffffffffffffffffffffff", 1},
		{"-inf", "-inf", 0},
		{"inf", "-inf", 1},
		{"1.5", "1.25", 1},
	}

	for _, tc := range cases {
		got, err := Compare(mustParse(t, tc.a), mustParse(t, tc.b))
		if err != nil {
			t.Fatalf("Compare(%s, %s) returned error: %v", tc.a, tc.b, err)
		}
		if got != tc.exp {
			t.Fatalf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.exp)
		}
		back, err := Compare(mustParse(t, tc.b), mustParse(t, tc.a))
		if err != nil || back != -tc.exp {
			t.Fatalf("Compare(%s, %s) = %d, %v, want %d", tc.b, tc.a, back, err, -tc.exp)
		}
	}
}

func TestCompare_NaN(t *testing.T) {
	nan := NewSpecial(SpecialNotANumber)
	for _, other := range []Value{nan, NewInteger(1, BaseDecimal), NewFloat(math.Inf(1))} {
		if _, err := Compare(nan, other); !errors.Is(err, ErrUnordered) {
			t.Fatalf("Compare(nan, %v) error = %v, want ErrUnordered", other, err)
		}
		if _, err := Compare(other, nan); !errors.Is(err, ErrUnordered) {
			t.Fatalf("Compare(%v, nan) error = %v, want ErrUnordered", other, err)
		}
	}
}

func TestEqualIdentical(t *testing.T) {
	if !Equal(NewFloat(math.NaN()), NewSpecial(SpecialNotANumber)) {
		t.Fatalf("nan should equal nan")
	}
	if Equal(NewSpecial(SpecialNotANumber), NewInteger(0, BaseDecimal)) {
		t.Fatalf("nan should not equal 0")
	}
	if !Equal(mustParse(t, "0x1a"), mustParse(t, "26.0")) {
		t.Fatalf("0x1a should equal 26.0")
	}
	if Identical(mustParse(t, "0x1a"), mustParse(t, "26")) {
		t.Fatalf("0x1a and 26 differ in base")
	}
	if Identical(mustParse(t, "26"), mustParse(t, "26.0")) {
		t.Fatalf("26 and 26.0 differ in kind")
	}
	if !Identical(mustParse(t, "0X1A"), mustParse(t, "+0x01a")) {
		t.Fatalf("0X1A and +0x01a should be identical")
	}
}

func TestValue_Accessors(t *testing.T) {
	v := NewFloat(math.Inf(-1))
	if v.Kind() != KindSpecial || !v.IsInf(-1) || !v.IsInf(0) || v.IsInf(1) {
		t.Fatalf("NewFloat(-Inf) = %v (%v)", v, v.Kind())
	}
	if s, ok := v.Special(); !ok || s != SpecialNegativeInfinity {
		t.Fatalf("Special() = %v, %v", s, ok)
	}
	if !math.IsInf(v.Float64(), -1) {
		t.Fatalf("Float64() = %v, want -Inf", v.Float64())
	}

	n := mustParse(t, "-0b1010")
	if got, ok := n.Int64(); !ok || got != -10 {
		t.Fatalf("Int64() = %d, %v, want -10", got, ok)
	}
	if n.Float64() != -10 {
		t.Fatalf("Float64() = %v, want -10", n.Float64())
	}
	if _, ok := NewFloat(1).Int64(); ok {
		t.Fatalf("Int64() of a float reported ok")
	}
	if f := mustParse(t, "1.5"); f.Base() != BaseDecimal || f.IsNaN() {
		t.Fatalf("1.5 reported base %v, nan %v", f.Base(), f.IsNaN())
	}

	huge := mustParse(t, "1"+strings.Repeat("0", 309))
	if !math.IsInf(huge.Float64(), 1) {
		t.Fatalf("Float64() of 1e309 integer = %v, want +Inf", huge.Float64())
	}
}
