package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRingOrderAndWrap(t *testing.T) {
	r := NewRing(3)
	if r.Lines() != nil || r.Last() != "" || r.Len() != 0 {
		t.Fatal("Expected empty ring")
	}

	for _, line := range []string{"a", "b"} {
		r.Push(line)
	}
	if got := strings.Join(r.Lines(), ","); got != "a,b" {
		t.Errorf("Lines() = %s, want a,b", got)
	}

	for _, line := range []string{"c", "d", "e"} {
		r.Push(line)
	}
	if got := strings.Join(r.Lines(), ","); got != "c,d,e" {
		t.Errorf("Lines() after wrap = %s, want c,d,e", got)
	}
	if r.Last() != "e" {
		t.Errorf("Last() = %q, want e", r.Last())
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
	if got := strings.Join(r.Tail(2), ","); got != "d,e" {
		t.Errorf("Tail(2) = %s, want d,e", got)
	}
	if got := len(r.Tail(10)); got != 3 {
		t.Errorf("Tail(10) returned %d lines, want 3", got)
	}
}

func TestSetupWritesFileAndRing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "granboard.log")
	ring := NewRing(10)

	log, closer, err := Setup(path, "debug", ring)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.WithField("status", "Failed").WithError(errors.New("no device")).Error("failed to connect to board")
	log.Debug("scanning")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Log file not written: %v", err)
	}
	if !strings.Contains(string(data), "failed to connect to board") {
		t.Errorf("Log file missing entry: %s", data)
	}

	lines := ring.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 ring lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ERROR failed to connect to board error=no device status=Failed") {
		t.Errorf("Unexpected ring line %q", lines[0])
	}
	if !strings.Contains(lines[1], "DEBUG scanning") {
		t.Errorf("Unexpected ring line %q", lines[1])
	}
}

func TestSetupRespectsLevel(t *testing.T) {
	ring := NewRing(10)
	log, _, err := Setup("", "warn", ring)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Info("hidden")
	log.Warn("shown")

	if ring.Len() != 1 || !strings.Contains(ring.Last(), "shown") {
		t.Errorf("Expected only the warning in the ring, got %v", ring.Lines())
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if _, _, err := Setup("", "chatty", nil); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}
