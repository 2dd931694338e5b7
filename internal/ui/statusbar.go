package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"glowband.dev/internal/band"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, running bool, stats band.Stats) string {
	status := ""
	if running {
		status = StyleStatusRunning.Render("[RUNNING]")
	} else {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" TX: %d  RX: %d  Dropped: %d",
		stats.BeaconsSent, stats.ReportsSeen, stats.Discarded)

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
