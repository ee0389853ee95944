package interval

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/vipcxj/numeral/internal/literal"
)

// Parse reads an interval written as
//
//	[lower .. upper]   both inclusive
//	(lower .. upper)   both exclusive
//	[lower .. upper)   mixed, either way round
//	lower .. upper     no brackets, same as [lower .. upper]
//
// Whitespace around the brackets, the bounds and the ".." separator is
// optional. Bounds are any literal accepted by literal.Parse. A run of three
// or more dots is always rejected because it cannot be split unambiguously
// between a bound ending in '.' and one starting with '.'.
//
// Every error is an *Error; its Input is text.
func Parse(text string) (Interval, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Interval{}, malformed(text, "", "empty interval")
	}

	lowerInclusive, upperInclusive := true, true
	open := s[0] == '[' || s[0] == '('
	end := s[len(s)-1]
	closed := end == ']' || end == ')'
	switch {
	case open && closed && len(s) >= 2:
		lowerInclusive = s[0] == '['
		upperInclusive = end == ']'
		s = s[1 : len(s)-1]
	case open:
		return Interval{}, malformed(text, s[:1], "missing closing bracket")
	case closed:
		return Interval{}, malformed(text, s[len(s)-1:], "missing opening bracket")
	}

	if i := strings.IndexAny(s, "[]()"); i >= 0 {
		return Interval{}, malformed(text, s[i:i+1], "unexpected bracket "+strconv.Quote(s[i:i+1]))
	}

	lowerText, upperText, perr := splitEllipsis(s)
	if perr != nil {
		perr.Input = text
		return Interval{}, perr
	}

	lower, err := literal.Parse(lowerText)
	if err != nil {
		return Interval{}, &Error{Err: ErrInvalidBoundLiteral, Input: text, Fragment: lowerText, Detail: "lower bound", Cause: err}
	}
	upper, err := literal.Parse(upperText)
	if err != nil {
		return Interval{}, &Error{Err: ErrInvalidBoundLiteral, Input: text, Fragment: upperText, Detail: "upper bound", Cause: err}
	}

	iv, err := New(lower, upper, lowerInclusive, upperInclusive)
	if err != nil {
		return Interval{}, withInput(err, text)
	}
	return iv, nil
}

// dotRun is a maximal run of '.' in body, as the half-open range [start, end).
type dotRun struct {
	start, end int
}

// splitEllipsis locates the separator in the bracket-free body and returns
// the trimmed text on either side of it. Input is left for the caller.
func splitEllipsis(body string) (string, string, *Error) {
	var runs []dotRun
	for i := 0; i < len(body); {
		if body[i] != '.' {
			i++
			continue
		}
		j := i
		for j < len(body) && body[j] == '.' {
			j++
		}
		if j-i >= 2 {
			runs = append(runs, dotRun{i, j})
		}
		i = j
	}

	switch len(runs) {
	case 0:
		return "", "", malformed("", body, "missing '..' separator")
	case 1:
	default:
		return "", "", malformed("", body[runs[1].start:runs[1].end], "more than one separator")
	}

	run := runs[0]
	sep := body[run.start:run.end]
	lower := strings.TrimSpace(body[:run.start])
	upper := strings.TrimSpace(body[run.end:])
	if lower == "" {
		return "", "", malformed("", sep, "missing lower bound")
	}
	if upper == "" {
		return "", "", malformed("", sep, "missing upper bound")
	}

	if len(sep) > 2 {
		touchesLeft := !isSpace(body[run.start-1])
		touchesRight := !isSpace(body[run.end])
		if touchesLeft || touchesRight {
			return "", "", &Error{Err: ErrAmbiguousEllipsis, Fragment: sep, Detail: "cannot tell which bound owns the extra dots"}
		}
		return "", "", malformed("", sep, "separator must be exactly two dots")
	}
	return lower, upper, nil
}

func isSpace(c byte) bool {
	return c < 0x80 && unicode.IsSpace(rune(c))
}

// IsInterval reports whether text parses as an interval.
func IsInterval(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// Standardize parses text and renders it in canonical form.
func Standardize(text string) (string, error) {
	iv, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Format(iv), nil
}

// IsStandard reports whether text is already in canonical form.
func IsStandard(text string) bool {
	std, err := Standardize(text)
	return err == nil && std == text
}
