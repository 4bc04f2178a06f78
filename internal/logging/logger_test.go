package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hackgods/hospital-management/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.Config{LogLevel: "debug", LogFormat: "json"}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v", logger.GetLevel())
	}

	logger.WithField("patient", "Bob").Info("patient registered")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not json: %v: %s", err, buf.String())
	}
	if entry["patient"] != "Bob" || entry["msg"] != "patient registered" {
		t.Fatalf("entry = %v", entry)
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.Config{LogLevel: "warn", LogFormat: "text"}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(config.Config{LogLevel: "loud"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}
