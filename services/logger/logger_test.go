package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZeroLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(zerolog.New(&buf), InfoLevel)

	l.Debug("hidden %d", 1)
	l.Info("copied package %d", 42)
	l.Error("failed: %s", "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %s", out)
	}
	if !strings.Contains(out, "copied package 42") {
		t.Fatalf("missing info line: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "failed: boom") {
		t.Fatalf("missing error line: %s", out)
	}
}

func TestWithAddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(zerolog.New(&buf), DebugLevel).With("component", "copy")
	l.Debug("x")
	if !strings.Contains(buf.String(), `"component":"copy"`) {
		t.Fatalf("expected component field, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != DebugLevel || ParseLevel("error") != ErrorLevel || ParseLevel("") != InfoLevel {
		t.Fatalf("unexpected level mapping")
	}
}

func TestNewWithFileWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	l, closer, err := NewWithFile("prod", dir)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	l.Info().Msg("hello file")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
