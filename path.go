package envvar

// parsePath accepts any text as a path. No cleaning or existence check is done,
// so a malformed path is never caught here.
func parsePath(raw string) (string, error) {
	return raw, nil
}

// PathOptional returns the variable as a file-system path.
func PathOptional(name string) (string, bool) {
	return optional(name, parsePath)
}

// PathOrDefault returns the variable as a file-system path, or def if it is unset
// or not valid unicode. def may be any string-based type.
func PathOrDefault[P ~string](name string, def P) string {
	return orDefault(name, string(def), parsePath)
}

// PathRequired returns the variable as a file-system path.
// It fails with ErrRequiredNotPresent or ErrNotUnicode.
func PathRequired(name string) (string, error) {
	return required(name, parsePath)
}
