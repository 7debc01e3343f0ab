package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "roster.log")
	l, err := New(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("entry committed", "len", 4)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(b))
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("expected JSON record, got %q (%v)", line, err)
	}
	if rec["msg"] != "entry committed" {
		t.Fatalf("unexpected msg: %v", rec["msg"])
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.log")
	l, err := New(Options{Path: path, Level: "error"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("dropped")
	l.Error("kept")
	_ = l.Close()

	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "dropped") || !strings.Contains(string(b), "kept") {
		t.Fatalf("unexpected log contents: %q", string(b))
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}

func TestNew_WithoutPathDiscards(t *testing.T) {
	l, err := New(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Error("nowhere")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
