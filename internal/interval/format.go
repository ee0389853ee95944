package interval

import (
	"strings"

	"github.com/vipcxj/numeral/internal/literal"
)

// Separator sits between the bounds in canonical output.
const Separator = " .. "

// Format renders r with both brackets and each bound in canonical literal
// form, e.g. "[1 .. 2)" or "(-inf .. 0.5]". The result always parses back
// to an equal interval.
func Format(r Interval) string {
	var sb strings.Builder
	sb.WriteString(r.LowerBracket())
	sb.WriteString(literal.Format(r.lower.Value))
	sb.WriteString(Separator)
	sb.WriteString(literal.Format(r.upper.Value))
	sb.WriteString(r.UpperBracket())
	return sb.String()
}

func (r Interval) String() string {
	return Format(r)
}
