package envvar

import (
	"errors"
	"fmt"
)

var (
	// ErrNotUnicode is returned when a variable is set but its value is not valid UTF-8.
	ErrNotUnicode = errors.New("environment variable is not valid unicode")
	// ErrParse is returned when a variable is set but does not match the expected form.
	ErrParse = errors.New("environment variable parsing failed")
	// ErrRequiredNotPresent is returned by required accessors when the variable is unset.
	ErrRequiredNotPresent = errors.New("required environment variable not present")
)

// Error describes why an accessor could not produce a value for Key.
// Err is one of ErrNotUnicode, ErrParse or ErrRequiredNotPresent.
type Error struct {
	Key string
	Err error
	// Reason is a free-form diagnostic, only set alongside ErrParse.
	Reason string
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("environment variable %s: %v: %s", e.Key, e.Err, e.Reason)
	}
	return fmt.Sprintf("environment variable %s: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notUnicodeError(key string) *Error {
	return &Error{Key: key, Err: ErrNotUnicode}
}

func parseError(key, reason string) *Error {
	return &Error{Key: key, Err: ErrParse, Reason: reason}
}

func notPresentError(key string) *Error {
	return &Error{Key: key, Err: ErrRequiredNotPresent}
}
