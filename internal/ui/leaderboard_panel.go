package ui

import (
	"fmt"
	"strings"

	"granboard.klederson.com/internal/leaderboard"
)

type column struct {
	title string
	width int
	value func(p leaderboard.Player) string
}

var leaderboardColumns = []column{
	{"#", 4, func(p leaderboard.Player) string { return fmt.Sprintf("%d", p.ID) }},
	{"Name", 24, func(p leaderboard.Player) string { return p.FullName() }},
	{"Team", 5, func(p leaderboard.Player) string { return string(p.Team) }},
	{"Country", 8, func(p leaderboard.Player) string { return string(p.Country) }},
	{"Pos", 8, func(p leaderboard.Player) string { return string(p.Position) }},
	{"Age", 4, func(p leaderboard.Player) string { return fmt.Sprintf("%d", p.Age) }},
	{"Hometown", 16, func(p leaderboard.Player) string { return p.Hometown }},
	{"BMI", 5, func(p leaderboard.Player) string { return fmt.Sprintf("%.1f", p.BMI) }},
}

// RenderLeaderboard renders the scrollable leaderboard table. The header
// stays fixed; only the player rows scroll.
func RenderLeaderboard(players []leaderboard.Player, width, height, cursor int, loaded bool) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 4 {
		innerH = 4
	}

	title := StylePanelTitle.Render(fmt.Sprintf("LEADERBOARD [%d]", len(players)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	header := StyleTableHeader.Render(truncRaw(formatRow(func(c column) string { return c.title }), innerW))
	headerLines := []string{title, separator, header}

	rowSpace := innerH - len(headerLines)
	if rowSpace < 1 {
		rowSpace = 1
	}

	var rows []string
	switch {
	case !loaded:
		rows = append(rows, "", StyleHelp.Render(" Loading leaderboard..."))
	case len(players) == 0:
		rows = append(rows, "", StyleHelp.Render(" No leaderboard data"))
	default:
		// Keep the cursor visible
		viewStart := 0
		if cursor >= rowSpace {
			viewStart = cursor - rowSpace + 1
		}
		for i := viewStart; i < len(players) && len(rows) < rowSpace; i++ {
			p := players[i]
			raw := truncRaw(formatRow(func(c column) string { return c.value(p) }), innerW)
			if i == cursor {
				rows = append(rows, StyleCursorRow.Render(raw))
			} else {
				rows = append(rows, StyleTableRow.Render(raw))
			}
		}
	}

	for len(rows) < rowSpace {
		rows = append(rows, "")
	}
	if len(rows) > rowSpace {
		rows = rows[:rowSpace]
	}

	all := append(headerLines, rows...)
	content := strings.Join(all, "\n")
	return StylePanelBorder.Width(width - 2).Height(innerH).Render(content)
}

func formatRow(cell func(c column) string) string {
	var sb strings.Builder
	for _, c := range leaderboardColumns {
		v := []rune(cell(c))
		if len(v) > c.width {
			v = v[:c.width]
		}
		sb.WriteString(fmt.Sprintf(" %-*s", c.width, string(v)))
	}
	return sb.String()
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	if len(r) < w {
		return s + strings.Repeat(" ", w-len(r))
	}
	return s
}
