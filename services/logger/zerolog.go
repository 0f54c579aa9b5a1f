package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog Logger for env.
// dev (or development) uses a human-friendly console writer, everything else JSON.
// An empty env falls back to APP_ENV.
func New(env string) zerolog.Logger {
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	var out io.Writer = os.Stdout
	if env == "dev" || env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// NewWithFile is New teed into a daily file logs/app-YYYY-MM-DD.log under dir.
// The returned closer must be called on shutdown.
func NewWithFile(env, dir string) (zerolog.Logger, io.Closer, error) {
	base := New(env)
	if dir == "" {
		return base, io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return base, io.NopCloser(nil), fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(dir, fmt.Sprintf("app-%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return base, io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	if env == "" {
		env = os.Getenv("APP_ENV")
	}
	var console io.Writer = os.Stdout
	if env == "dev" || env == "development" {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(zerolog.MultiLevelWriter(console, f)).With().Timestamp().Logger()
	return l, f, nil
}
