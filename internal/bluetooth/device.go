package bluetooth

import (
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// Granboard GATT layout.
const (
	ServiceUUID = "442f1570-8a00-9a28-cbe1-e1d4212d53eb"
	NotifyUUID  = "442f1571-8a00-9a28-cbe1-e1d4212d53eb"

	// BoardNamePrefix starts the advertised local name of every Granboard.
	BoardNamePrefix = "GRANBOARD"
)

// IsBoardName reports whether an advertised local name belongs to a Granboard.
func IsBoardName(name string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(name)), BoardNamePrefix)
}

// link is the part of a BLE connection a Board needs to tear down.
type link interface {
	Disconnect() error
}

// Board is a connected dartboard.
type Board struct {
	name        string
	address     string
	link        link
	connectedAt time.Time

	mu            sync.Mutex
	notifications int
	lastPayload   []byte
	lastSeen      time.Time
	disconnected  bool
}

func newBoard(name, address string, l link) *Board {
	return &Board{
		name:        name,
		address:     address,
		link:        l,
		connectedAt: time.Now(),
	}
}

// Name returns the advertised name, or "[unnamed]" if empty.
func (b *Board) Name() string {
	if b.name == "" {
		return "[unnamed]"
	}
	return b.name
}

// Address returns the board's Bluetooth address.
func (b *Board) Address() string {
	return b.address
}

// ConnectedAt returns when the link was established.
func (b *Board) ConnectedAt() time.Time {
	return b.connectedAt
}

// Disconnect tears the link down. Calling it more than once is a no-op.
func (b *Board) Disconnect() error {
	b.mu.Lock()
	if b.disconnected {
		b.mu.Unlock()
		return nil
	}
	b.disconnected = true
	b.mu.Unlock()

	if b.link == nil {
		return nil
	}
	return b.link.Disconnect()
}

// onNotify records a raw notification payload. Safe to call from the
// Bluetooth stack's goroutine.
func (b *Board) onNotify(buf []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notifications++
	b.lastPayload = append(b.lastPayload[:0], buf...)
	b.lastSeen = time.Now()
}

// Activity summarizes notifications received since connecting.
type Activity struct {
	Notifications int
	LastPayload   string // hex encoded
	LastSeen      time.Time
}

// Activity returns a snapshot of the board's notification counters.
func (b *Board) Activity() Activity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Activity{
		Notifications: b.notifications,
		LastPayload:   hex.EncodeToString(b.lastPayload),
		LastSeen:      b.lastSeen,
	}
}
