package envvar

import (
	"os"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// diagnostics receives every fallback and failure message emitted by the accessors.
var diagnostics log.FieldLogger = log.StandardLogger()

// SetLogger redirects accessor diagnostics to logger.
// Passing nil restores the logrus standard logger.
//
// SetLogger is meant to be called during start-up, before accessors run
// concurrently.
func SetLogger(logger log.FieldLogger) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	diagnostics = logger
}

// lookup reads the raw value of name from the process environment.
// A set but non-UTF-8 value is reported as ErrNotUnicode.
func lookup(name string) (string, bool, error) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return "", false, nil
	}

	if !utf8.ValidString(raw) {
		return "", true, notUnicodeError(name)
	}

	return raw, true, nil
}
