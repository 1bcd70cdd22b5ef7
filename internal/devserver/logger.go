package devserver

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LoggerOption represents a function that configures a logger
type LoggerOption func(*logrus.Logger)

// WithOutput sets the logger output
func WithOutput(w io.Writer) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithLevel sets the log level
func WithLevel(level logrus.Level) LoggerOption {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// WithJSON switches to JSON output.
func WithJSON() LoggerOption {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}

// NewLogger creates a logger configured from cfg, then applies opts.
func NewLogger(cfg Config, opts ...LoggerOption) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	for _, opt := range opts {
		opt(logger)
	}
	return logger
}
