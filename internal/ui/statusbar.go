package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"granboard.klederson.com/internal/connection"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, status connection.Status, boardName string, players, rows int) string {
	state := StatusStyle(status).Render("[" + strings.ToUpper(status.String()) + "]")

	board := boardName
	if board == "" {
		board = "-"
	}
	info := fmt.Sprintf(" Board: %s  Players: %d  Rows: %d", board, players, rows)

	content := state + StyleStatusBar.Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}

// StatusStyle returns the text style for a connection status.
func StatusStyle(s connection.Status) lipgloss.Style {
	switch s {
	case connection.Connecting:
		return StyleStatusPending
	case connection.Connected:
		return StyleStatusConnected
	case connection.Failed:
		return StyleStatusFailed
	default:
		return StyleStatusIdle
	}
}
