/*
Package envvar reads typed configuration values from process environment
variables.

# Overview

Every supported type comes with three accessors that differ only in how a
missing or malformed variable is handled:

	Optional   - missing or malformed yields (zero, false)
	OrDefault  - missing or malformed yields the caller's default
	Required   - missing or malformed yields an *Error

Each call performs exactly one environment lookup and at most one parse.
Nothing is cached, so a variable changed at runtime is observed on the next
call.

# Installation

	go get github.com/go-fynx/envvar

# Quick Start

	package main

	import (
		"log"
		"time"

		"github.com/go-fynx/envvar"
	)

	func main() {
		envvar.InitAll("")

		debug := envvar.BoolOrDefault("DEBUG", false)
		timeout := envvar.DurationSecondsOrDefault("TIMEOUT_SECS", 30*time.Second)
		dataDir := envvar.PathOrDefault("DATA_DIR", "/var/lib/app")

		port, err := envvar.NumOrDefault("PORT", 8080)
		if err != nil {
			log.Fatal("Invalid PORT:", err)
		}

		dsn, err := envvar.StringRequired("DATABASE_URL")
		if err != nil {
			log.Fatal("Config error:", err)
		}

		log.Printf("port=%d debug=%t timeout=%s data=%s db=%s", port, debug, timeout, dataDir, dsn)
	}

# Supported Types

	bool           - exactly "true", "TRUE", "false" or "FALSE"
	numbers        - any int, uint or float kind, via NumOrDefault
	time.Duration  - whole, non-negative seconds, e.g. "120"
	path           - any text, returned verbatim
	string         - any text, returned verbatim

Booleans are stricter than strconv.ParseBool: "1", "t" and "True" are
rejected. Durations are plain seconds, so "2m" and "1.5" are rejected.

# Numbers

NumOrDefault is the only OrDefault accessor that can fail. An unset
variable yields the default, but a variable that is set to something that is
not a number (including the empty string) yields ErrParse and the default
is ignored:

	PORT unset  -> 8080, nil
	PORT=9090   -> 9090, nil
	PORT=abc    -> 0, ErrParse

There are no NumOptional or NumRequired functions. Treat the error as
absence, or as fatal, at the call site.

# Error Handling

Required accessors and NumOrDefault return an *Error wrapping one of:

  - ErrRequiredNotPresent: the variable is unset
  - ErrParse: the variable is set but malformed; Error.Reason says why
  - ErrNotUnicode: the variable is set but is not valid UTF-8

Use errors.Is to tell them apart:

	if _, err := envvar.BoolRequired("DEBUG"); errors.Is(err, envvar.ErrRequiredNotPresent) {
		// ...
	}

Optional and OrDefault accessors never return errors. Every fallback is
logged at warning level through logrus; use SetLogger to redirect or silence
these diagnostics.

# Start-up Helpers

InitEnvFile loads a .env file with github.com/joho/godotenv without
overriding variables that are already set. A missing file prints a warning
and is otherwise ignored.

InitLogger sets LOG_LEVEL to a default when it is unset, then configures the
logrus standard logger from it. An existing LOG_LEVEL is never overwritten.

InitAll runs InitEnvFile and then InitLogger.

# Limitations

  - InitLogger writes to the process environment. Call it before starting
    goroutines that read the environment.
  - Paths are not cleaned or validated; any text is a valid path.
*/
package envvar
