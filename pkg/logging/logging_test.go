package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf)
	logger.Info().Str("product_id", "p1").Msg("options built")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["product_id"] != "p1" {
		t.Errorf("expected product_id field, got %v", entry)
	}
	if entry["message"] != "options built" {
		t.Errorf("expected message field, got %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"garbage", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSON(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithProduct(ctx, "p42")

	FromContext(ctx).Info().Msg("hydrating")

	if !strings.Contains(buf.String(), `"product_id":"p42"`) {
		t.Errorf("expected product_id in output, got %s", buf.String())
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != Default() {
		t.Error("empty context should yield the default logger")
	}
	if FromContext(nil) != Default() { //nolint:staticcheck // nil context is the degenerate case under test
		t.Error("nil context should yield the default logger")
	}
}
