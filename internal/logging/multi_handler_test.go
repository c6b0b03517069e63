package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandler_FansOut(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	logger := slog.New(MultiHandler(
		slog.NewTextHandler(&first, nil),
		nil,
		slog.NewJSONHandler(&second, nil),
	))

	logger.Info("catalog imported", "products", 3)

	if !strings.Contains(first.String(), "catalog imported") {
		t.Fatalf("expected text output, got %q", first.String())
	}
	if !strings.Contains(second.String(), `"products":3`) {
		t.Fatalf("expected JSON output, got %q", second.String())
	}
}

func TestMultiHandler_NoHandlersDiscards(t *testing.T) {
	t.Parallel()

	logger := slog.New(MultiHandler())
	logger.Info("dropped")
}

func TestMultiHandler_RespectsLevels(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := slog.New(MultiHandler(
		slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}),
	))

	logger.Info("below threshold")
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}

	logger.Warn("at threshold")
	if !strings.Contains(out.String(), "at threshold") {
		t.Fatalf("expected warn output, got %q", out.String())
	}
}
