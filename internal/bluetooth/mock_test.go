package bluetooth

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestMockConnectorSucceeds(t *testing.T) {
	m := NewMockConnector(time.Millisecond, 0, quietLogger())

	h, err := m.ConnectToBoard(context.Background())
	if err != nil {
		t.Fatalf("ConnectToBoard returned error: %v", err)
	}
	if !IsBoardName(h.Name()) {
		t.Errorf("Expected a Granboard name, got %q", h.Name())
	}
	if len(h.Address()) != 17 {
		t.Errorf("Expected a MAC address, got %q", h.Address())
	}
	if err := h.Disconnect(); err != nil {
		t.Errorf("Disconnect returned error: %v", err)
	}
}

func TestMockConnectorFails(t *testing.T) {
	m := NewMockConnector(time.Millisecond, 1, quietLogger())

	h, err := m.ConnectToBoard(context.Background())
	if err == nil {
		t.Fatal("Expected an error with failure rate 1")
	}
	if h != nil {
		t.Error("Expected no handle on failure")
	}
}

func TestMockConnectorHonorsCancel(t *testing.T) {
	m := NewMockConnector(time.Hour, 0, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.ConnectToBoard(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
