package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glowband.dev/internal/anim"
)

const pixelGlyph = "●"

// RenderStripPanel draws the LED strip as one colored glyph per pixel
// inside a bordered panel, with the current animation phase beneath.
func RenderStripPanel(width int, pixels []anim.Color, state anim.State) string {
	var b strings.Builder
	for i, px := range pixels {
		if i > 0 {
			b.WriteString(" ")
		}
		if px == anim.Off {
			b.WriteString(StylePixelOff.Render("·"))
			continue
		}
		c := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", px.R, px.G, px.B))
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(pixelGlyph))
	}

	title := StylePanelTitle.Render("STRIP")
	phase := StyleHelp.Render("phase: " + state.String())
	content := lipgloss.JoinVertical(lipgloss.Left, title, b.String(), phase)
	return StylePanelBorder.Width(width - 2).Render(content)
}
