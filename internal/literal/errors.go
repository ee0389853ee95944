package literal

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for input that is empty after trimming.
	ErrEmpty = errors.New("empty literal")
	// ErrNoGrammarMatched is returned when no grammar alternative matches the whole input.
	ErrNoGrammarMatched = errors.New("no grammar matched")
	// ErrSignedNaN is returned for "+nan" and "-nan".
	ErrSignedNaN = errors.New("nan cannot carry a sign")
	// ErrOutOfRange is returned when a float literal overflows float64.
	ErrOutOfRange = errors.New("value out of float64 range")
	// ErrUnordered is returned by Compare when either operand is nan.
	ErrUnordered = errors.New("nan cannot be ordered")
)

// Error reports a literal that could not be classified. Err is one of the
// sentinel errors above; Text is the input exactly as the caller passed it.
type Error struct {
	Err  error
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("literal %q: %v", e.Text, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
