package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestContextFieldsAreEmitted(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithUserID(ctx, "user-456")
	logg.Info(ctx, "hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("expected request_id field, got %v", entry["request_id"])
	}
	if entry["user_id"] != "user-456" {
		t.Fatalf("expected user_id field, got %v", entry["user_id"])
	}
	if entry["service"] != "test" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	logg.Error(context.Background(), "boom", errors.New("kaput"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["error"] != "kaput" {
		t.Fatalf("expected error field, got %v", entry["error"])
	}
	if entry["stack"] == nil || entry["stack"] == "" {
		t.Fatal("expected stack field on error logs")
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("warn"); got != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", got)
	}
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
	if got := ParseLevel("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback for bad input, got %v", got)
	}
}
