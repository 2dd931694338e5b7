package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"glowband.dev/internal/config"
	"glowband.dev/internal/wire"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, self wire.PeerID, demo bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"1-4", " peer"},
		{"L", "oss"},
		{"P", "ause"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := "radio"
	if demo {
		mode = "demo"
	}
	right := StyleMenuLabel.Render(fmt.Sprintf("self: band %d  mode: %s ", self, mode))

	left := StyleMenuKey.Render(title) + menu

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
