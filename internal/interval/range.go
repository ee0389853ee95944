package interval

import "github.com/vipcxj/numeral/internal/literal"

// Range is a set of numeric values. Interval and Set both implement it.
type Range interface {
	// Contains reports whether v lies in the range. nan is never contained.
	Contains(v literal.Value) bool
	IsEmpty() bool
	IsLowerBounded() bool
	IsUpperBounded() bool
}

var (
	_ Range = Interval{}
	_ Range = Set{}
)
