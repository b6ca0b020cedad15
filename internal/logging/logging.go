// Package logging hands out scoped leveled loggers backed by pion/logging.
//
// Levels follow the PION_LOG_<LEVEL> environment variables understood by
// the default factory, e.g. PION_LOG_DEBUG=pipeline,cli.
package logging

import (
	"io"
	"strings"

	"github.com/pion/logging"
)

var loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a logger for scope from the package factory.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}

// Factory returns the package factory.
func Factory() logging.LoggerFactory {
	return loggerFactory
}

// NewFactory builds a factory writing to w at level for every scope.
func NewFactory(w io.Writer, level logging.LogLevel) logging.LoggerFactory {
	return &logging.DefaultLoggerFactory{
		Writer:          w,
		DefaultLogLevel: level,
		ScopeLevels:     map[string]logging.LogLevel{},
	}
}

// SetFactory replaces the package factory. Call it before any logger is
// created; it is not safe for concurrent use.
func SetFactory(f logging.LoggerFactory) {
	if f != nil {
		loggerFactory = f
	}
}

// ParseLevel maps a level name to a pion log level. Unknown names yield
// LogLevelWarn, the pion default, and false.
func ParseLevel(name string) (logging.LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "disabled", "off", "none":
		return logging.LogLevelDisabled, true
	case "error":
		return logging.LogLevelError, true
	case "warn", "warning":
		return logging.LogLevelWarn, true
	case "info":
		return logging.LogLevelInfo, true
	case "debug":
		return logging.LogLevelDebug, true
	case "trace":
		return logging.LogLevelTrace, true
	default:
		return logging.LogLevelWarn, false
	}
}
