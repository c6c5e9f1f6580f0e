package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.WarnLevel,
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) got=%v want=%v", in, got, want)
		}
	}
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, "warn")

	log.Info().Msg("hidden message")
	log.Warn().Str("source", "trade.csv").Msg("visible message")

	output := buf.String()
	if strings.Contains(output, "hidden message") {
		t.Errorf("info message should be filtered at warn level, got: %s", output)
	}
	if !strings.Contains(output, "visible message") || !strings.Contains(output, "trade.csv") {
		t.Errorf("expected warn message with field, got: %s", output)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf, "debug"))

	retrieved := FromContext(ctx)
	retrieved.Debug().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_NoLogger(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("expected disabled logger, got level %v", log.GetLevel())
	}
}
