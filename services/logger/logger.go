package logger

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Level is the minimum severity a Logger emits
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger is the printf-style logging contract services depend on
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// ZeroLogger implements Logger on top of a zerolog.Logger
type ZeroLogger struct {
	zl    zerolog.Logger
	level Level
}

// NewZeroLogger wraps zl, dropping messages below level
func NewZeroLogger(zl zerolog.Logger, level Level) *ZeroLogger {
	return &ZeroLogger{zl: zl, level: level}
}

// Nop returns a Logger that discards everything
func Nop() *ZeroLogger {
	return NewZeroLogger(zerolog.Nop(), ErrorLevel)
}

// With returns a child logger carrying an extra string field
func (l *ZeroLogger) With(key, value string) *ZeroLogger {
	return &ZeroLogger{zl: l.zl.With().Str(key, value).Logger(), level: l.level}
}

// Zerolog exposes the underlying zerolog.Logger for structured call sites
func (l *ZeroLogger) Zerolog() zerolog.Logger {
	return l.zl
}

func (l *ZeroLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.zl.Info().Msg(fmt.Sprintf(format, v...))
	}
}

func (l *ZeroLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.zl.Error().Msg(fmt.Sprintf(format, v...))
	}
}

func (l *ZeroLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.zl.Debug().Msg(fmt.Sprintf(format, v...))
	}
}

// ParseLevel maps debug/info/error to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
