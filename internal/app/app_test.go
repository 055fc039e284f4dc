package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"granboard.klederson.com/internal/connection"
	"granboard.klederson.com/internal/leaderboard"
)

type fakeHandle struct{ disconnected bool }

func (h *fakeHandle) Name() string      { return "GRANBOARD-TEST" }
func (h *fakeHandle) Address() string   { return "AA:BB:CC:DD:EE:FF" }
func (h *fakeHandle) Disconnect() error { h.disconnected = true; return nil }

// gateConnector blocks each attempt until a result is sent on release.
type gateConnector struct {
	release chan error
	handle  *fakeHandle
}

func newGateConnector() *gateConnector {
	return &gateConnector{release: make(chan error, 1), handle: &fakeHandle{}}
}

func (g *gateConnector) ConnectToBoard(ctx context.Context) (connection.Handle, error) {
	select {
	case err := <-g.release:
		if err != nil {
			return nil, err
		}
		return g.handle, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func sized(t *testing.T, m AppModel) AppModel {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestNewStartsIdle(t *testing.T) {
	m := sized(t, New(Options{Connector: newGateConnector()}))
	defer m.Close()

	if m.Status() != connection.Idle {
		t.Fatalf("Expected Idle, got %s", m.Status())
	}
	if !strings.Contains(m.View(), "Click Here To Connect") {
		t.Error("Expected idle label in view")
	}
}

func TestActivateConnects(t *testing.T) {
	conn := newGateConnector()
	m := sized(t, New(Options{Connector: conn}))
	defer m.Close()

	m, cmd := update(t, m, key("c"))
	if cmd == nil {
		t.Fatal("Expected a command waiting for the attempt")
	}
	if m.Status() != connection.Connecting {
		t.Fatalf("Expected Connecting, got %s", m.Status())
	}
	if !strings.Contains(m.View(), "Connecting...") {
		t.Error("Expected connecting label in view")
	}

	// A second activation while connecting is ignored
	if _, again := update(t, m, key("enter")); again != nil {
		t.Error("Expected activation while connecting to be ignored")
	}

	conn.release <- nil
	if _, ok := cmd().(ConnectSettledMsg); !ok {
		t.Fatal("Expected ConnectSettledMsg")
	}
	if m.Status() != connection.Connected {
		t.Fatalf("Expected Connected, got %s", m.Status())
	}
	view := m.View()
	for _, want := range []string{"Connected", "GRANBOARD-TEST", "AA:BB:CC:DD:EE:FF"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	if _, again := update(t, m, key(" ")); again != nil {
		t.Error("Expected activation while connected to be ignored")
	}
}

func TestActivateFailsAndRetries(t *testing.T) {
	conn := newGateConnector()
	m := sized(t, New(Options{Connector: conn}))
	defer m.Close()

	_, cmd := update(t, m, key("c"))
	conn.release <- errors.New("adapter off")
	cmd()

	if m.Status() != connection.Failed {
		t.Fatalf("Expected Failed, got %s", m.Status())
	}
	if !strings.Contains(m.View(), "Error - please click to retry.") {
		t.Error("Expected retry label in view")
	}

	_, cmd = update(t, m, key("c"))
	if cmd == nil || m.Status() != connection.Connecting {
		t.Fatal("Expected retry from Failed to start a new attempt")
	}
	conn.release <- nil
	cmd()
	if m.Status() != connection.Connected {
		t.Fatalf("Expected Connected after retry, got %s", m.Status())
	}
}

func TestQuitCancelsAttempt(t *testing.T) {
	conn := newGateConnector()
	m := New(Options{Connector: conn})

	_, settle := update(t, m, key("c"))
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected QuitMsg")
	}

	// The cancelled attempt settles without ever connecting
	settle()
	if m.Status() == connection.Connected {
		t.Error("Expected no connection after quit")
	}
	if _, again := update(t, m, key("c")); again != nil {
		t.Error("Expected activation after quit to be ignored")
	}
}

func TestLeaderboardLoaded(t *testing.T) {
	m := sized(t, New(Options{Connector: newGateConnector(), Loader: &leaderboard.Loader{Source: "unused.xlsx"}}))
	defer m.Close()

	if m.loaded {
		t.Fatal("Expected leaderboard to be pending")
	}

	wb := &leaderboard.Workbook{Sheets: []leaderboard.Sheet{{
		Name: "Players",
		Rows: [][]string{
			{"id", "First Name", "Last Name"},
			{"1", "Ada", "Lovelace"},
			{"2", "Alan", "Turing"},
		},
	}}}
	m, _ = update(t, m, LeaderboardLoadedMsg{Workbook: wb})
	if !m.loaded || len(m.players) != 2 || m.rows != 3 {
		t.Fatalf("Unexpected state: loaded=%v players=%d rows=%d", m.loaded, len(m.players), m.rows)
	}

	m, _ = update(t, m, key("l"))
	view := m.View()
	if !strings.Contains(view, "LEADERBOARD [2]") || !strings.Contains(view, "Alan Turing") {
		t.Error("Expected leaderboard screen with players")
	}

	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("down"))
	if m.cursor != 1 {
		t.Errorf("Expected cursor clamped to 1, got %d", m.cursor)
	}

	m, _ = update(t, m, key("esc"))
	if m.screen != screenBoard {
		t.Error("Expected esc to return to the board")
	}
}

func TestLeaderboardErrorIsSilent(t *testing.T) {
	m := sized(t, New(Options{Connector: newGateConnector(), Loader: &leaderboard.Loader{Source: "missing.xlsx"}}))
	defer m.Close()

	err := &leaderboard.LoadError{Source: "missing.xlsx", Err: errors.New("not found")}
	m, cmd := update(t, m, LeaderboardLoadedMsg{Err: err})
	if cmd != nil {
		t.Error("Expected no command on load error")
	}
	if !m.loaded || len(m.players) != 0 {
		t.Error("Expected an empty, loaded leaderboard")
	}
	if m.Status() != connection.Idle {
		t.Error("Expected connection status untouched by load error")
	}
}

func TestToggleLog(t *testing.T) {
	m := New(Options{Connector: newGateConnector()})
	defer m.Close()

	m, _ = update(t, m, key("d"))
	if !m.showLog {
		t.Error("Expected log panel shown")
	}
	m, _ = update(t, m, key("d"))
	if m.showLog {
		t.Error("Expected log panel hidden")
	}
}
