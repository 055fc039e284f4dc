package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"granboard.klederson.com/internal/connection"
)

// BoardInfo is what the detail panel shows about the connection.
type BoardInfo struct {
	Status        connection.Status
	SpinnerFrame  string
	Name          string
	Address       string
	ConnectedAt   time.Time
	Notifications int
	LastPayload   string
	LastSeen      time.Time
	Err           error
}

// RenderDetailPanel renders the connect control, the board details and,
// when logLines is non-empty, the most recent diagnostics below them.
func RenderDetailPanel(info BoardInfo, width, height int, logLines []string) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}
	innerH := height - 2
	if innerH < 5 {
		innerH = 5
	}

	title := StylePanelTitle.Render("DARTBOARD")
	sep := StyleSeparator.Render(strings.Repeat("-", innerW))
	lines := []string{title, sep, ""}

	lines = append(lines, "  "+RenderConnectButton(info.Status, info.SpinnerFrame))
	lines = append(lines, StyleHelp.Render("  press [C] or [Enter]"), "")

	type field struct{ label, value string }
	fields := []field{
		{"Status", StatusStyle(info.Status).Render(info.Status.String())},
	}
	if info.Status == connection.Connected {
		fields = append(fields,
			field{"Name", StyleFieldValue.Render(info.Name)},
			field{"Address", StyleFieldValue.Render(info.Address)},
			field{"Since", StyleFieldValue.Render(formatSince(info.ConnectedAt))},
			field{"Packets", StyleFieldValue.Render(fmt.Sprintf("%d", info.Notifications))},
			field{"Last", StyleFieldValue.Render(lastPacket(info))},
		)
	}
	if info.Status == connection.Failed && info.Err != nil {
		fields = append(fields, field{"Error", StyleStatusFailed.Render(info.Err.Error())})
	}

	for _, f := range fields {
		label := StyleFieldLabel.Render(fmt.Sprintf("  %-9s", f.label))
		lines = append(lines, truncStyled(label+f.value, innerW))
	}

	if len(logLines) > 0 {
		lines = append(lines, "", StylePanelTitle.Render("DIAGNOSTICS"), sep)
		room := innerH - len(lines)
		if room < 1 {
			room = 1
		}
		if len(logLines) > room {
			logLines = logLines[len(logLines)-room:]
		}
		for _, l := range logLines {
			sty := StyleLogLine
			if strings.Contains(l, " ERROR ") || strings.Contains(l, " WARNING ") {
				sty = StyleLogError
			}
			lines = append(lines, sty.Render(truncRaw(l, innerW)))
		}
	}

	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	return StylePanelActive.Width(width - 2).Height(innerH).Render(content)
}

func lastPacket(info BoardInfo) string {
	if info.Notifications == 0 {
		return "none yet"
	}
	return fmt.Sprintf("%s (%s)", info.LastPayload, formatSince(info.LastSeen))
}

func formatSince(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := time.Since(t)
	if d < time.Second {
		return "now"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm ago", int(d.Minutes()))
}

// truncStyled drops a styled line that would wrap inside the panel.
func truncStyled(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(s)
}
