package interval

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vipcxj/numeral/internal/literal"
)

// SetSeparator joins the intervals of a Set in canonical output.
const SetSeparator = " ; "

// Set is a union of intervals. A value is in the set if any interval
// contains it; an empty Set contains nothing.
type Set struct {
	Intervals []Interval
}

// ParseSet parses intervals separated by ';', e.g. "[0 .. 1) ; (2 .. inf)".
// Blank input is the empty set. Errors from individual intervals are
// returned unchanged, prefixed with their position.
func ParseSet(text string) (Set, error) {
	var s Set
	if strings.TrimSpace(text) == "" {
		return s, nil
	}
	for i, part := range strings.Split(text, ";") {
		if strings.TrimSpace(part) == "" {
			return Set{}, fmt.Errorf("interval %d: %w", i, malformed(text, part, "empty interval"))
		}
		iv, err := Parse(part)
		if err != nil {
			return Set{}, fmt.Errorf("interval %d: %w", i, err)
		}
		s.Intervals = append(s.Intervals, iv)
	}
	return s, nil
}

func (s Set) Contains(v literal.Value) bool {
	for _, iv := range s.Intervals {
		if iv.Contains(v) {
			return true
		}
	}
	return false
}

func (s Set) IsEmpty() bool {
	for _, iv := range s.Intervals {
		if !iv.IsEmpty() {
			return false
		}
	}
	return true
}

// IsLowerBounded reports whether every non-empty interval has a finite
// lower bound.
func (s Set) IsLowerBounded() bool {
	for _, iv := range s.Intervals {
		if !iv.IsEmpty() && !iv.IsLowerBounded() {
			return false
		}
	}
	return true
}

func (s Set) IsUpperBounded() bool {
	for _, iv := range s.Intervals {
		if !iv.IsEmpty() && !iv.IsUpperBounded() {
			return false
		}
	}
	return true
}

// IsUnbounded reports whether the set covers every value except nan.
func (s Set) IsUnbounded() bool {
	n := s.Normalize()
	return len(n.Intervals) == 1 && n.Intervals[0].IsUnbounded()
}

// Normalize drops empty intervals, sorts the rest by lower bound and merges
// intervals that overlap or touch. [0 .. 1) ; [1 .. 2] becomes [0 .. 2];
// [0 .. 1) ; (1 .. 2] stays apart because 1 is in neither.
func (s Set) Normalize() Set {
	ivs := make([]Interval, 0, len(s.Intervals))
	for _, iv := range s.Intervals {
		if !iv.IsEmpty() {
			ivs = append(ivs, iv)
		}
	}
	slices.SortStableFunc(ivs, compareLower)

	var out []Interval
	for _, iv := range ivs {
		if len(out) == 0 {
			out = append(out, iv)
			continue
		}
		last := &out[len(out)-1]
		if !joins(*last, iv) {
			out = append(out, iv)
			continue
		}
		switch c := mustCompare(iv.upper.Value, last.upper.Value); {
		case c > 0:
			last.upper = iv.upper
			last.upperInclusive = iv.upperInclusive
		case c == 0:
			last.upperInclusive = last.upperInclusive || iv.upperInclusive
		}
	}
	return Set{Intervals: out}
}

// compareLower orders intervals by lower bound, inclusive before exclusive.
func compareLower(a, b Interval) int {
	if c := mustCompare(a.lower.Value, b.lower.Value); c != 0 {
		return c
	}
	switch {
	case a.lowerInclusive == b.lowerInclusive:
		return 0
	case a.lowerInclusive:
		return -1
	}
	return 1
}

// joins reports whether next, which does not start before prev, overlaps or
// touches prev.
func joins(prev, next Interval) bool {
	c := mustCompare(next.lower.Value, prev.upper.Value)
	return c < 0 || (c == 0 && (prev.upperInclusive || next.lowerInclusive))
}

// mustCompare compares bounds that New has already checked are not nan.
func mustCompare(a, b literal.Value) int {
	c, err := literal.Compare(a, b)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatSet renders the normalized set. The empty set renders as "".
func FormatSet(s Set) string {
	n := s.Normalize()
	parts := make([]string, len(n.Intervals))
	for i, iv := range n.Intervals {
		parts[i] = Format(iv)
	}
	return strings.Join(parts, SetSeparator)
}

func (s Set) String() string {
	return FormatSet(s)
}
