package envvar

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Number is any type NumOrDefault can parse from text and render back for logging.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParseNumber parses raw as T, honouring the bit size of T.
// Integers are base 10 with an optional sign; a leading '+' is accepted for
// unsigned kinds too. Floats accept anything strconv.ParseFloat does.
//
//nolint:exhaustive // Number restricts T to the kinds handled below.
func ParseNumber[T Number](raw string) (T, error) {
	var out T
	value := reflect.ValueOf(&out).Elem()

	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intVal, err := strconv.ParseInt(raw, 10, value.Type().Bits())
		if err != nil {
			return out, err
		}
		value.SetInt(intVal)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintVal, err := parseUnsigned(raw, value.Type().Bits())
		if err != nil {
			return out, err
		}
		value.SetUint(uintVal)

	case reflect.Float32, reflect.Float64:
		floatVal, err := strconv.ParseFloat(raw, value.Type().Bits())
		if err != nil {
			return out, err
		}
		value.SetFloat(floatVal)

	default:
		return out, fmt.Errorf("unsupported numeric kind %v", value.Kind())
	}

	return out, nil
}

// parseUnsigned is strconv.ParseUint with a single optional leading '+',
// matching what strconv.ParseInt allows for signed kinds.
func parseUnsigned(raw string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, bitSize)
}

// NumOrDefault returns the variable parsed as T, or def if it is unset.
//
// Unlike every other OrDefault accessor, a variable that is set but malformed
// (including set to the empty string) is an error: ErrParse is returned and def
// is not used. There are no optional or required numeric variants. Callers get
// required semantics by treating any error as fatal, and optional semantics by
// treating an error as absence.
func NumOrDefault[T Number](name string, def T) (T, error) {
	var zero T

	value, ok, err := lookupAndParse(name, func(raw string) (T, error) {
		parsed, err := ParseNumber[T](raw)
		if err != nil {
			return parsed, fmt.Errorf("can't parse value: %w", err)
		}
		return parsed, nil
	})

	switch {
	case err != nil:
		diagnostics.WithFields(log.Fields{"env": name, "error": err}).
			Errorf("Env var '%s' could not be read.", name)
		return zero, err
	case !ok:
		diagnostics.WithField("env", name).Warnf("Env var '%s' not supplied. Using default '%v'.", name, def)
		return def, nil
	}

	return value, nil
}
