package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_NoFileIsNop(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Fatalf("expected nop logger to disable every level")
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "taskgraph.log")

	logger, err := New(Options{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("graph changed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "graph changed") {
		t.Fatalf("expected info entry in log, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry must be filtered at info level, got %q", out)
	}
}

func TestNew_DebugEnablesDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskgraph.log")

	logger, err := New(Options{File: path, Level: "error", Debug: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("pointer down")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "pointer down") {
		t.Fatalf("expected debug entry, got %q", data)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	if err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
