package envvar

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	Test[T comparable] struct {
		name     string
		got      T
		expected T
	}

	Tests[T comparable] []Test[T]
)

func (tests Tests[T]) runTests(t *testing.T) {
	t.Helper()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.got)
		})
	}
}

// unsetEnv removes name for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, name string) {
	t.Helper()

	t.Setenv(name, "")
	require.NoError(t, os.Unsetenv(name))
}

// captureDiagnostics routes accessor diagnostics to an in-memory hook.
func captureDiagnostics(t *testing.T) *test.Hook {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	SetLogger(logger)
	t.Cleanup(func() { SetLogger(nil) })

	return hook
}

// requireEnvError asserts err is an *Error for key wrapping target.
func requireEnvError(t *testing.T, err error, key string, target error) *Error {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, target)

	var envErr *Error
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, key, envErr.Key)

	return envErr
}

// chdir changes the working directory for the duration of the test and
// restores it afterwards (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
