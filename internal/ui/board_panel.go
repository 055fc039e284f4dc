package ui

// RenderBoardPanel wraps pre-rendered board cells with a styled border.
// The cells come from BoardCells so they can be cached per panel size.
func RenderBoardPanel(width, height int, cells string) string {
	title := StylePanelTitle.Render("BOARD")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(title + "\n" + cells)
}
