package envvar

func parseString(raw string) (string, error) {
	return raw, nil
}

// StringOptional returns the variable unchanged.
func StringOptional(name string) (string, bool) {
	return optional(name, parseString)
}

// StringOrDefault returns the variable unchanged, or def if it is unset.
func StringOrDefault(name, def string) string {
	return orDefault(name, def, parseString)
}

// StringRequired returns the variable unchanged, or ErrRequiredNotPresent if it is unset.
func StringRequired(name string) (string, error) {
	return required(name, parseString)
}
