package interval

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedSyntax     = errors.New("malformed interval syntax")
	ErrAmbiguousEllipsis   = errors.New("ambiguous ellipsis")
	// ErrUnorderedBounds covers lower > upper and nan bounds.
	ErrUnorderedBounds     = errors.New("bounds are not ordered")
	ErrUnboundedMustBeOpen = errors.New("infinite bound must be open")
	// ErrInvalidBoundLiteral wraps the *literal.Error of the bound that failed.
	ErrInvalidBoundLiteral = errors.New("invalid bound literal")
)

// Error describes a rejected interval. Err is one of the sentinels above and
// Fragment is the offending part of Input. Cause is set when a bound literal
// failed to parse.
type Error struct {
	Err      error
	Input    string
	Fragment string
	Detail   string
	Cause    error
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Input != "" {
		fmt.Fprintf(&sb, "interval %q: ", e.Input)
	}
	sb.WriteString(e.Err.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func malformed(input, fragment, detail string) *Error {
	return &Error{Err: ErrMalformedSyntax, Input: input, Fragment: fragment, Detail: detail}
}
