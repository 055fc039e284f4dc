package bluetooth

import (
	"errors"
	"testing"
)

type countingLink struct {
	calls int
	err   error
}

func (l *countingLink) Disconnect() error {
	l.calls++
	return l.err
}

func TestIsBoardName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"GRANBOARD", true},
		{"GRANBOARD3s", true},
		{"granboard 132", true},
		{"  GRANBOARD", true},
		{"", false},
		{"iPhone 15 Pro", false},
		{"MY GRANBOARD", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBoardName(tt.name); got != tt.want {
				t.Errorf("IsBoardName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBoardDisconnectOnce(t *testing.T) {
	l := &countingLink{}
	b := newBoard("GRANBOARD", "AA:BB:CC:DD:EE:FF", l)

	if err := b.Disconnect(); err != nil {
		t.Fatalf("Disconnect returned error: %v", err)
	}
	if err := b.Disconnect(); err != nil {
		t.Fatalf("Second Disconnect returned error: %v", err)
	}
	if l.calls != 1 {
		t.Errorf("Expected link to be disconnected once, got %d", l.calls)
	}
}

func TestBoardDisconnectError(t *testing.T) {
	boom := errors.New("dbus gone")
	b := newBoard("GRANBOARD", "AA:BB:CC:DD:EE:FF", &countingLink{err: boom})
	if err := b.Disconnect(); !errors.Is(err, boom) {
		t.Errorf("Expected %v, got %v", boom, err)
	}
}

func TestBoardActivity(t *testing.T) {
	b := newBoard("", "AA:BB:CC:DD:EE:FF", nil)
	if b.Name() != "[unnamed]" {
		t.Errorf("Expected placeholder name, got %q", b.Name())
	}

	payload := []byte{0x33, 0x2E, 0x31, 0x40}
	b.onNotify(payload)
	payload[0] = 0xFF // the board keeps its own copy
	b.onNotify([]byte{0x01, 0x02})

	a := b.Activity()
	if a.Notifications != 2 {
		t.Errorf("Expected 2 notifications, got %d", a.Notifications)
	}
	if a.LastPayload != "0102" {
		t.Errorf("Expected last payload 0102, got %s", a.LastPayload)
	}
	if a.LastSeen.IsZero() {
		t.Error("Expected LastSeen to be set")
	}
}
