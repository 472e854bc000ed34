package envvar

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// maxDurationSeconds is the largest whole number of seconds a time.Duration can hold.
const maxDurationSeconds = uint64(math.MaxInt64 / int64(time.Second))

var errDurationOverflow = errors.New("value out of range for time.Duration")

// ParseDurationSeconds parses raw as a non-negative whole number of seconds.
// A single leading '+' is allowed. Negative numbers, decimals and unit suffixes
// are rejected: "120" and "+120" are valid, "2m", "-1" and "1.5" are not.
func ParseDurationSeconds(raw string) (time.Duration, error) {
	seconds, err := parseUnsigned(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("couldn't parse as number: '%s'", raw)
	}

	if seconds > maxDurationSeconds {
		return 0, fmt.Errorf("%w: %s seconds", errDurationOverflow, raw)
	}

	return time.Duration(seconds) * time.Second, nil
}

// DurationSecondsOptional returns the variable as a duration in seconds.
// The second result is false if the variable is unset or cannot be parsed.
func DurationSecondsOptional(name string) (time.Duration, bool) {
	return optional(name, ParseDurationSeconds)
}

// DurationSecondsOrDefault returns the variable as a duration in seconds,
// or def if it is unset or cannot be parsed.
func DurationSecondsOrDefault(name string, def time.Duration) time.Duration {
	return orDefault(name, def, ParseDurationSeconds)
}

// DurationSecondsRequired returns the variable as a duration in seconds.
func DurationSecondsRequired(name string) (time.Duration, error) {
	return required(name, ParseDurationSeconds)
}
