package envvar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const durationKey = "ENVVAR_TEST_DURATION"

func TestParseDurationSeconds(t *testing.T) {
	zero, err := ParseDurationSeconds("0")
	require.NoError(t, err)

	twoMinutes, err := ParseDurationSeconds("120")
	require.NoError(t, err)

	largest, err := ParseDurationSeconds("9223372036")
	require.NoError(t, err)

	plusSigned, err := ParseDurationSeconds("+120")
	require.NoError(t, err)

	Tests[time.Duration]{
		{"zero", zero, 0},
		{"120 seconds", twoMinutes, 2 * time.Minute},
		{"largest representable", largest, 9223372036 * time.Second},
		{"leading plus", plusSigned, 2 * time.Minute},
	}.runTests(t)

	for _, raw := range []string{"-1", "1.5", "abc", "", "5s", "+", "+-1", "++5", " 5", "9223372037", "18446744073709551616"} {
		_, err := ParseDurationSeconds(raw)
		assert.Error(t, err, "%q should not parse", raw)
	}
}

func Test_DurationSeconds_Valid(t *testing.T) {
	t.Setenv(durationKey, "120")

	optionalVal, ok := DurationSecondsOptional(durationKey)
	assert.True(t, ok)
	assert.Equal(t, 120*time.Second, optionalVal)

	assert.Equal(t, 120*time.Second, DurationSecondsOrDefault(durationKey, time.Second))

	requiredVal, err := DurationSecondsRequired(durationKey)
	require.NoError(t, err)
	assert.Equal(t, 120*time.Second, requiredVal)
}

func Test_DurationSeconds_LeadingPlus(t *testing.T) {
	t.Setenv(durationKey, "+120")

	got, err := DurationSecondsRequired(durationKey)
	require.NoError(t, err)
	assert.Equal(t, 120*time.Second, got)
}

func Test_DurationSeconds_Invalid(t *testing.T) {
	const def = 30 * time.Second

	for _, raw := range []string{"-1", "1.5", "abc", ""} {
		t.Run("value "+raw, func(t *testing.T) {
			t.Setenv(durationKey, raw)

			_, ok := DurationSecondsOptional(durationKey)
			assert.False(t, ok)

			assert.Equal(t, def, DurationSecondsOrDefault(durationKey, def))

			_, err := DurationSecondsRequired(durationKey)
			envErr := requireEnvError(t, err, durationKey, ErrParse)
			assert.Contains(t, envErr.Reason, "couldn't parse as number")
		})
	}
}

func Test_DurationSeconds_Unset(t *testing.T) {
	unsetEnv(t, durationKey)

	_, ok := DurationSecondsOptional(durationKey)
	assert.False(t, ok)

	assert.Equal(t, time.Minute, DurationSecondsOrDefault(durationKey, time.Minute))

	_, err := DurationSecondsRequired(durationKey)
	requireEnvError(t, err, durationKey, ErrRequiredNotPresent)
}

func Test_DurationSeconds_Overflow(t *testing.T) {
	t.Setenv(durationKey, "9223372037")

	_, err := DurationSecondsRequired(durationKey)
	envErr := requireEnvError(t, err, durationKey, ErrParse)
	assert.Contains(t, envErr.Reason, "out of range")
}
