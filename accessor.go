package envvar

import log "github.com/sirupsen/logrus"

// parseFunc converts the raw text of a variable into T.
// A returned error becomes the Reason of an ErrParse.
type parseFunc[T any] func(raw string) (T, error)

// lookupAndParse performs one lookup and, when the variable is set, one parse.
// The bool result reports whether the variable was set.
func lookupAndParse[T any](name string, parse parseFunc[T]) (T, bool, error) {
	var zero T

	raw, ok, err := lookup(name)
	if err != nil || !ok {
		return zero, ok, err
	}

	value, err := parse(raw)
	if err != nil {
		return zero, true, parseError(name, err.Error())
	}

	return value, true, nil
}

// optional maps absence and failure to (zero, false).
func optional[T any](name string, parse parseFunc[T]) (T, bool) {
	value, ok, err := lookupAndParse(name, parse)

	switch {
	case err != nil:
		diagnostics.WithFields(log.Fields{"env": name, "error": err}).
			Warnf("Env var '%s' could not be read. Returning no value.", name)
		return value, false
	case !ok:
		diagnostics.WithField("env", name).Warnf("Env var '%s' not supplied.", name)
		return value, false
	}

	return value, true
}

// orDefault maps absence and failure to def.
func orDefault[T any](name string, def T, parse parseFunc[T]) T {
	value, ok, err := lookupAndParse(name, parse)

	switch {
	case err != nil:
		diagnostics.WithFields(log.Fields{"env": name, "error": err}).
			Warnf("Env var '%s' could not be read. Using default '%v'.", name, def)
		return def
	case !ok:
		diagnostics.WithField("env", name).Warnf("Env var '%s' not supplied. Using default '%v'.", name, def)
		return def
	}

	return value
}

// required maps absence to ErrRequiredNotPresent and passes failures through.
func required[T any](name string, parse parseFunc[T]) (T, error) {
	value, ok, err := lookupAndParse(name, parse)
	if err != nil {
		diagnostics.WithFields(log.Fields{"env": name, "error": err}).
			Warnf("Required env var '%s' could not be read.", name)
		return value, err
	}

	if !ok {
		diagnostics.WithField("env", name).Warnf("Required env var '%s' not supplied.", name)
		return value, notPresentError(name)
	}

	return value, nil
}
