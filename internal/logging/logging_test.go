package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: WarnLevel, Output: &buf})

	logger.Debug("debug message", nil)
	logger.Info("info message", nil)
	logger.Warn("warn message", nil)
	logger.Error("error message", nil)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("output should not contain messages below warn: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("output should contain warn and error messages: %q", out)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: JSONFormat, Level: DebugLevel, Output: &buf})

	logger.Debug("running engine", Fields{"analysis": "coupling", "timeout": "5m0s"})

	var e struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if e.Level != "debug" {
		t.Errorf("level = %q, want debug", e.Level)
	}
	if e.Message != "running engine" {
		t.Errorf("message = %q, want %q", e.Message, "running engine")
	}
	if e.Fields["analysis"] != "coupling" {
		t.Errorf("fields[analysis] = %v, want coupling", e.Fields["analysis"])
	}
}

func TestLogger_HumanFormatFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: InfoLevel, Output: &buf})

	logger.Info("log generated", Fields{"path": "/tmp/out.log", "commits": 42})

	out := buf.String()
	if !strings.Contains(out, "path=/tmp/out.log") {
		t.Errorf("output missing field: %q", out)
	}
	if !strings.Contains(out, "commits=42") {
		t.Errorf("output missing field: %q", out)
	}
}

func TestNop(t *testing.T) {
	// Must not panic and must stay silent
	logger := Nop()
	logger.Error("discarded", Fields{"k": "v"})
}
