package envvar

import "fmt"

// ParseBool accepts exactly "true", "TRUE", "false" and "FALSE".
// Unlike strconv.ParseBool, "1", "t" and "True" are rejected.
func ParseBool(raw string) (bool, error) {
	switch raw {
	case "true", "TRUE":
		return true, nil
	case "false", "FALSE":
		return false, nil
	default:
		return false, fmt.Errorf("couldn't parse as bool: '%s'", raw)
	}
}

// BoolOptional returns the variable as a bool.
// The second result is false if the variable is unset or cannot be parsed.
func BoolOptional(name string) (bool, bool) {
	return optional(name, ParseBool)
}

// BoolOrDefault returns the variable as a bool, or def if it is unset or cannot be parsed.
func BoolOrDefault(name string, def bool) bool {
	return orDefault(name, def, ParseBool)
}

// BoolRequired returns the variable as a bool.
// It fails with ErrRequiredNotPresent, ErrParse or ErrNotUnicode.
func BoolRequired(name string) (bool, error) {
	return required(name, ParseBool)
}
