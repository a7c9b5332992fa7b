package internal

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-catalogue/config"
)

func TestInitLogging_JSONConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := InitLoggingTo(&buf, config.LoggingConfig{Level: "warn"}); err != nil {
		t.Fatalf("InitLoggingTo: %v", err)
	}

	log := Logger()
	log.Info().Msg("dropped")
	log.Warn().Str("stop", "Marushkino").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" || entry["message"] != "kept" || entry["stop"] != "Marushkino" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry should carry a timestamp")
	}
}

func TestInitLogging_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var console bytes.Buffer
	if err := InitLoggingTo(&console, config.LoggingConfig{Level: "debug", File: path, MaxSizeMB: 1}); err != nil {
		t.Fatalf("InitLoggingTo: %v", err)
	}

	log := Logger()
	log.Debug().Msg("to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "to file") || !strings.Contains(console.String(), "to file") {
		t.Errorf("file %q, console %q", data, console.String())
	}
}

func TestInitLogging_BadLevel(t *testing.T) {
	if err := InitLoggingTo(&bytes.Buffer{}, config.LoggingConfig{Level: "loud"}); err == nil {
		t.Error("InitLoggingTo should reject an unknown level")
	}
}
