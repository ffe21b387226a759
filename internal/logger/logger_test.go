package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	appctx "github.com/mangodesk/summary-service/internal/pkg/context"
)

func TestInitWithWriter_JSONFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	Logger.Info().Str("k", "v").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["message"] != "hello" || line["k"] != "v" {
		t.Fatalf("line = %v", line)
	}
}

func TestInitWithWriter_LevelFiltering(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	Logger.Info().Msg("dropped")
	Logger.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatal("info line passed a warn filter")
	}
	if !strings.Contains(out, "kept") {
		t.Fatal("warn line missing")
	}
}

func TestInitWithWriter_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "shouting")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	Logger.Info().Msg("still here")
	if !strings.Contains(buf.String(), "still here") {
		t.Fatal("info line missing after bad level")
	}
}

func TestWithCtx_AddsRequestID(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	ctx := appctx.WithRequestID(context.Background(), "req-9")
	WithCtx(ctx).Info().Msg("tagged")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if line["request_id"] != "req-9" {
		t.Fatalf("line = %v", line)
	}
}

func TestWithCtx_NoRequestID_PlainLogger(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")

	var buf bytes.Buffer
	InitWithWriter(&buf)

	WithCtx(context.Background()).Info().Msg("untagged")

	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("unexpected request_id in %q", buf.String())
	}
}
