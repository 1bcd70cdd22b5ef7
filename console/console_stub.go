//go:build !js && !wasm

package console

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Native builds (tests, tooling) have no browser console, so output goes to
// a logrus logger instead. NOJS_LOG_LEVEL selects the level; default warn
// keeps test output quiet.
var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(os.Getenv("NOJS_LOG_LEVEL"))
	if err != nil {
		level = logrus.WarnLevel
	}
	l.SetLevel(level)
	return l
}

// Logger exposes the native logger so tests can redirect or silence it.
func Logger() *logrus.Logger {
	return logger
}

// Log writes at debug level in native builds.
func Log(args ...any) {
	logger.Debug(args...)
}

// Warn writes at warn level in native builds.
func Warn(args ...any) {
	logger.Warn(args...)
}

// Error writes at error level in native builds.
func Error(args ...any) {
	logger.Error(args...)
}
