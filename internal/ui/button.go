package ui

import "granboard.klederson.com/internal/connection"

// RenderConnectButton renders the connect control. Its text is always the
// status label; it is drawn disabled while no activation is accepted.
func RenderConnectButton(status connection.Status, spinnerFrame string) string {
	label := status.Label()
	switch status {
	case connection.Connecting:
		return StyleButtonDisabled.Render(spinnerFrame + " " + label)
	case connection.Connected:
		return StyleButtonDone.Render(label)
	default:
		return StyleButton.Render(label)
	}
}
