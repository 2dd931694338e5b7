package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the strip panel above the peer panel, with menu
// bar on top and status bar on bottom.
func ComposeLayout(menuBar, stripPanel, peerPanel, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, stripPanel, peerPanel, statusBar)
}
