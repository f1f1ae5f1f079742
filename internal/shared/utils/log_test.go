package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)
	return &buf
}

func TestLogHelpers(t *testing.T) {
	tests := []struct {
		name  string
		log   func()
		level string
	}{
		{"info", func() { LogInfo("processed", map[string]interface{}{"fields_found": 7}) }, "info"},
		{"warn", func() { LogWarn("processed", map[string]interface{}{"fields_found": 7}) }, "warn"},
		{"error", func() { LogError("processed", errors.New("boom"), map[string]interface{}{"fields_found": 7}) }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)
			tt.log()

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("invalid log line %q: %v", buf.String(), err)
			}
			if entry["level"] != tt.level || entry["message"] != "processed" || entry["fields_found"] != float64(7) {
				t.Errorf("unexpected entry %v", entry)
			}
			if tt.level == "error" && entry["error"] != "boom" {
				t.Errorf("error field = %v", entry["error"])
			}
		})
	}
}

func TestInitLoggerLevel(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	InitLogger("production", "warn")
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", zerolog.GlobalLevel())
	}

	InitLogger("development", "bogus")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("level = %v, want info fallback", zerolog.GlobalLevel())
	}
}
