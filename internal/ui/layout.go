package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the body panels horizontally, with menu bar on top
// and status bar on bottom.
func ComposeLayout(menuBar, statusBar string, panels ...string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
