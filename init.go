package envvar

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	// EnvLogLevel is the variable InitLogger reads the log level from.
	EnvLogLevel = "LOG_LEVEL"

	// DefaultLogLevel is written to EnvLogLevel when it is unset and no default is given.
	DefaultLogLevel = "info"

	// defaultEnvFile is loaded by InitEnvFile when no file names are given.
	defaultEnvFile = ".env"

	warningPrefix = "\033[33m[Warning]:\033[0m"
)

// InitLogger configures the logrus standard logger from EnvLogLevel.
//
// If EnvLogLevel is unset it is first set to defaultIfAbsent, or to
// DefaultLogLevel when defaultIfAbsent is empty. An existing value is never
// overwritten. Messages go to stdout because logging is not configured yet.
//
// InitLogger writes to the process environment and must run during
// single-threaded start-up, before any accessor is called concurrently.
func InitLogger(defaultIfAbsent string) {
	if _, ok := os.LookupEnv(EnvLogLevel); !ok {
		level := defaultIfAbsent
		if level == "" {
			level = DefaultLogLevel
		}

		fmt.Printf("Setting default logging level to %q, override with env var %s.\n", level, EnvLogLevel)

		if err := os.Setenv(EnvLogLevel, level); err != nil {
			fmt.Printf("%s Could not set %s: %v\n", warningPrefix, EnvLogLevel, err)
		}
	}

	configureLogger(log.StandardLogger())
}

// configureLogger applies the level held in EnvLogLevel to logger.
// An unknown level leaves logger at info.
func configureLogger(logger *log.Logger) {
	raw := strings.TrimSpace(os.Getenv(EnvLogLevel))

	level, err := log.ParseLevel(raw)
	if err != nil {
		fmt.Printf("%s Unknown log level %q in %s, using %q.\n", warningPrefix, raw, EnvLogLevel, DefaultLogLevel)
		level = log.InfoLevel
	}

	logger.SetLevel(level)
}

// InitEnvFile loads variables from the given .env files into the process
// environment, defaulting to ".env" in the working directory. Variables that
// are already set are not overridden.
//
// Loading is best-effort: the outcome is printed to stdout and a missing or
// malformed file is never fatal.
func InitEnvFile(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{defaultEnvFile}
	}

	files := strings.Join(filenames, ", ")

	if err := godotenv.Load(filenames...); err != nil {
		fmt.Printf("%s Could not load env file [%s: %v]. Continuing with the process environment only.\n",
			warningPrefix, files, err)
		return
	}

	fmt.Printf("Loaded environment from %s.\n", files)
}

// InitAll runs InitEnvFile with the default file, then InitLogger, so a
// LOG_LEVEL set in .env takes effect.
func InitAll(defaultIfAbsent string) {
	InitEnvFile()
	InitLogger(defaultIfAbsent)
}
