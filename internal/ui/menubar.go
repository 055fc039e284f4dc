package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"granboard.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, source string, demo bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"C", "onnect"},
		{"L", "eaderboard"},
		{"D", "iagnostics"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := StyleStatusConnected.Render("BLE")
	if demo {
		mode = StyleStatusPending.Render("DEMO")
	}
	adapterInfo := StyleMenuLabel.Render(fmt.Sprintf("Adapter: %s", source))

	left := StyleMenuKey.Render(title) + menu
	right := mode + "  " + adapterInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
