package interval

import (
	"errors"
	"testing"

	"github.com/vipcxj/numeral/internal/literal"
)

func lit(t *testing.T, text string) literal.Value {
	t.Helper()
	v, err := literal.Parse(text)
	if err != nil {
		t.Fatalf("literal.Parse(%q) returned error: %v", text, err)
	}
	return v
}

func TestNew_Rules(t *testing.T) {
	cases := []struct {
		name         string
		lower, upper string
		li, ui       bool
		err          error
	}{
		{"finite_closed", "1", "3", true, true, nil},
		{"single_point", "7", "7", true, true, nil},
		{"single_point_open", "7", "7.0", true, false, nil},
		{"min_gt_max", "5", "4", true, true, ErrUnorderedBounds},
		{"float_gt_int", "4.5", "4", false, false, ErrUnorderedBounds},
		{"lower_inf_open", "-inf", "0", false, true, nil},
		{"lower_inf_closed", "-inf", "0", true, true, ErrUnboundedMustBeOpen},
		{"upper_inf_closed", "0", "inf", false, true, ErrUnboundedMustBeOpen},
		{"both_inf_open", "-inf", "inf", false, false, nil},
		{"inf_inf", "inf", "inf", false, false, nil},
		{"inf_reversed", "inf", "-inf", false, false, ErrUnorderedBounds},
		{"nan_lower", "nan", "1", false, false, ErrUnorderedBounds},
		{"nan_upper", "1", "nan", false, false, ErrUnorderedBounds},
	}

	for _, tc := range cases {
		_, err := New(lit(t, tc.lower), lit(t, tc.upper), tc.li, tc.ui)
		if tc.err == nil {
			if err != nil {
				t.Fatalf("%s: New returned error: %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Fatalf("%s: New error = %v, want %v", tc.name, err, tc.err)
		}
	}
}

func TestInterval_Contains(t *testing.T) {
	cases := []struct {
		in      string
		inside  []string
		outside []string
	}{
		{"[1 .. 3]", []string{"1", "2", "3", "1.0", "2.5", "0x3"}, []string{"0", "0.999", "3.0001", "inf", "nan"}},
		{"(1 .. 3)", []string{"1.5", "2", "2.999"}, []string{"1", "3", "1.0", "0b11"}},
		{"[1 .. 3)", []string{"1", "2.9"}, []string{"3", "0.9"}},
		{"(-inf .. 0]", []string{"-1e300", "0", "-0.0"}, []string{"-inf", "1e-300", "nan"}},
		{"(-inf .. inf)", []string{"0", "-1e308", "1e308"}, []string{"inf", "-inf", "nan"}},
		{"[7 .. 7]", []string{"7", "7.0"}, []string{"6.9999", "7.0001"}},
		{"[7 .. 7)", nil, []string{"7", "6", "8"}},
	}

	for _, tc := range cases {
		iv, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		for _, v := range tc.inside {
			if !iv.Contains(lit(t, v)) {
				t.Fatalf("%s.Contains(%s) = false, want true", tc.in, v)
			}
		}
		for _, v := range tc.outside {
			if iv.Contains(lit(t, v)) {
				t.Fatalf("%s.Contains(%s) = true, want false", tc.in, v)
			}
		}
	}
}

func TestInterval_Predicates(t *testing.T) {
	cases := []struct {
		in                                    string
		empty, single, integral, lower, upper bool
	}{
		{"[1 .. 2]", false, false, true, true, true},
		{"[1 .. 2.5]", false, false, false, true, true},
		{"[0x1 .. 0b1]", false, true, true, true, true},
		{"(1 .. 1]", true, false, true, true, true},
		{"(-inf .. 2)", false, false, false, false, true},
		{"(2 .. inf)", false, false, false, true, false},
		{"(-inf .. inf)", false, false, false, false, false},
	}

	for _, tc := range cases {
		iv, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got := iv.IsEmpty(); got != tc.empty {
			t.Fatalf("%s: IsEmpty() = %v, want %v", tc.in, got, tc.empty)
		}
		if got := iv.IsSingleValue(); got != tc.single {
			t.Fatalf("%s: IsSingleValue() = %v, want %v", tc.in, got, tc.single)
		}
		if got := iv.IsIntegral(); got != tc.integral {
			t.Fatalf("%s: IsIntegral() = %v, want %v", tc.in, got, tc.integral)
		}
		if got := iv.IsLowerBounded(); got != tc.lower {
			t.Fatalf("%s: IsLowerBounded() = %v, want %v", tc.in, got, tc.lower)
		}
		if got := iv.IsUpperBounded(); got != tc.upper {
			t.Fatalf("%s: IsUpperBounded() = %v, want %v", tc.in, got, tc.upper)
		}
		if got := iv.IsUnbounded(); got != (!tc.lower && !tc.upper) {
			t.Fatalf("%s: IsUnbounded() = %v", tc.in, got)
		}
	}

	if !Unbounded().IsUnbounded() || Unbounded().String() != "(-inf .. inf)" {
		t.Fatalf("Unbounded() = %v", Unbounded())
	}
}

func TestInterval_Brackets(t *testing.T) {
	iv := MustNew(lit(t, "0"), lit(t, "1"), false, true)
	if iv.LowerBracket() != "(" || iv.UpperBracket() != "]" {
		t.Fatalf("brackets = %s %s, want ( ]", iv.LowerBracket(), iv.UpperBracket())
	}
	var zero Interval
	if zero.String() != "(0 .. 0)" || !zero.IsEmpty() {
		t.Fatalf("zero Interval = %v, empty %v", zero, zero.IsEmpty())
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew(2, 1) did not panic")
		}
	}()
	MustNew(lit(t, "2"), lit(t, "1"), true, true)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Err: ErrInvalidBoundLiteral, Detail: "lower bound", Cause: cause}
	if !errors.Is(err, ErrInvalidBoundLiteral) || !errors.Is(err, cause) {
		t.Fatalf("errors.Is failed on %v", err)
	}
	if err.Error() != "invalid bound literal: lower bound: boom" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if errors.Is(&Error{Err: ErrMalformedSyntax}, cause) {
		t.Fatalf("error without cause matched an unrelated error")
	}
}
