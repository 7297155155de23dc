package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeLine(t *testing.T, line string) entry {
	t.Helper()
	var e entry
	if err := json.Unmarshal([]byte(line), &e); err != nil {
		t.Fatalf("log line %q is not JSON: %v", line, err)
	}
	return e
}

func TestJSONLoggerWritesOneLinePerEntry(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, DebugLevel)

	log.Info("server started", String("addr", "127.0.0.1:8050"), Int("pid", 42))
	log.Warn("slow request")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	first := decodeLine(t, lines[0])
	if first.Level != "INFO" || first.Message != "server started" {
		t.Errorf("first entry = %+v", first)
	}
	if first.Fields["addr"] != "127.0.0.1:8050" {
		t.Errorf("addr field = %v", first.Fields["addr"])
	}
	if first.Fields["pid"] != float64(42) {
		t.Errorf("pid field = %v", first.Fields["pid"])
	}
	if first.Time == "" {
		t.Error("entry has no timestamp")
	}

	second := decodeLine(t, lines[1])
	if second.Level != "WARN" || second.Fields != nil {
		t.Errorf("second entry = %+v", second)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, WarnLevel)

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")
	log.Error("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}

func TestWithPresetsFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel)

	child := log.With(Component("api"), RequestID("abc-123"))
	child.Info("handled", Status(200))

	e := decodeLine(t, strings.TrimSpace(buf.String()))
	if e.Fields["component"] != "api" {
		t.Errorf("component = %v", e.Fields["component"])
	}
	if e.Fields["request_id"] != "abc-123" {
		t.Errorf("request_id = %v", e.Fields["request_id"])
	}
	if e.Fields["status"] != float64(200) {
		t.Errorf("status = %v", e.Fields["status"])
	}

	// The parent is unaffected.
	buf.Reset()
	log.Info("plain")
	if e := decodeLine(t, strings.TrimSpace(buf.String())); e.Fields != nil {
		t.Errorf("parent entry gained fields: %+v", e.Fields)
	}
}

func TestErrField(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel)

	log.Error("failed", Err(errors.New("boom")))

	e := decodeLine(t, strings.TrimSpace(buf.String()))
	if e.Fields["error"] != "boom" {
		t.Errorf("error field = %v", e.Fields["error"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"DEBUG":   DebugLevel,
		"info":    InfoLevel,
		"warn":    WarnLevel,
		"error":   ErrorLevel,
		"":        InfoLevel,
		"unknown": InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}
	log.Info("into the void")
	if child := log.With(String("k", "v")); child == nil {
		t.Error("NopLogger.With returned nil")
	}
}
