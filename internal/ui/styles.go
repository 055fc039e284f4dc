package ui

import "github.com/charmbracelet/lipgloss"

// Pub palette
var (
	ColorChalk       = lipgloss.Color("#F2F2E6")
	ColorCream       = lipgloss.Color("#D9CBA3")
	ColorBrass       = lipgloss.Color("#C8A951")
	ColorDimBrass    = lipgloss.Color("#6B5A2A")
	ColorFelt        = lipgloss.Color("#0E3B2E")
	ColorBoardRed    = lipgloss.Color("#E03C31")
	ColorBoardGreen  = lipgloss.Color("#2E8B57")
	ColorBorderNorm  = lipgloss.Color("#8C7A3F")
	ColorBorderFocus = lipgloss.Color("#C8A951")
	ColorError       = lipgloss.Color("#FF5533")
	ColorWarning     = lipgloss.Color("#FFAA00")
	ColorMuted       = lipgloss.Color("#7A7A6E")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorFelt).
			Foreground(ColorChalk).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBrass).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorCream)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorFelt).
			Foreground(ColorCream).
			Padding(0, 1)

	StyleStatusConnected = lipgloss.NewStyle().
				Foreground(ColorBoardGreen).
				Bold(true)

	StyleStatusPending = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusFailed = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorChalk)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBrass).
			Bold(true).
			Padding(0, 1)

	StyleButton = lipgloss.NewStyle().
			Foreground(ColorChalk).
			Background(ColorBoardRed).
			Bold(true).
			Padding(0, 2)

	StyleButtonDisabled = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Background(lipgloss.Color("#2A2A26")).
				Padding(0, 2)

	StyleButtonDone = lipgloss.NewStyle().
			Foreground(ColorChalk).
			Background(ColorBoardGreen).
			Bold(true).
			Padding(0, 2)

	StyleFieldLabel = lipgloss.NewStyle().
			Foreground(ColorDimBrass)

	StyleFieldValue = lipgloss.NewStyle().
			Foreground(ColorChalk).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDimBrass)

	StyleTableHeader = lipgloss.NewStyle().
				Foreground(ColorBrass).
				Bold(true)

	StyleTableRow = lipgloss.NewStyle().
			Foreground(ColorCream)

	StyleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorBrass).
			Bold(true)

	StyleLogLine = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleLogError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimBrass)
)
