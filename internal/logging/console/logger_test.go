package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/veloura/go-storefront/internal/logging"
	"github.com/veloura/go-storefront/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 2, 11, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("storefront.seeder")
	logger = logging.WithFields(logger, map[string]any{"module": "storefront.seeder"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"correlation_id": "req-1234",
	})
	logger = logger.WithContext(ctx)

	pageID := uuid.MustParse("8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999")
	logger.Info("seed.pages.create",
		"page_id", pageID,
		"seeded_at", time.Date(2026, 2, 11, 18, 0, 0, 0, time.UTC),
	)

	got := strings.TrimSpace(buf.String())
	want := "2026-02-11T15:09:26.535897Z INFO seed.pages.create correlation_id=req-1234 logger=storefront.seeder module=storefront.seeder page_id=8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999 seeded_at=2026-02-11T18:00:00Z"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("storefront.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
	if strings.Contains(lines[0], "ignored.debug") {
		t.Fatalf("unexpected debug log present: %s", lines[0])
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  console.Level
		ok    bool
	}{
		{"debug", console.LevelDebug, true},
		{"WARN", console.LevelWarn, true},
		{"warning", console.LevelWarn, true},
		{" info ", console.LevelInfo, true},
		{"verbose", console.LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := console.ParseLevel(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v, %v", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
