package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"glowband.dev/internal/band"
	"glowband.dev/internal/wire"
)

// RenderPeerPanel lists all peer slots with their presence state.
func RenderPeerPanel(width int, self wire.PeerID, tracker *band.Tracker) string {
	var b strings.Builder
	b.WriteString(StylePanelTitle.Render("PEERS"))
	b.WriteString("\n")

	for id := wire.PeerID(0); id < wire.MaxPeer; id++ {
		line := fmt.Sprintf(" band %d  %s", id, peerLabel(id, self, tracker))
		b.WriteString(peerStyle(id, self, tracker).Render(line))
		if id != wire.MaxPeer-1 {
			b.WriteString("\n")
		}
	}

	return StylePanelBorder.Width(width - 2).Render(b.String())
}

func peerLabel(id, self wire.PeerID, tracker *band.Tracker) string {
	switch {
	case id == self:
		return "self"
	case tracker.Seen(id) && tracker.CountdownActive(id):
		return "seen (cooldown)"
	case tracker.Seen(id):
		return "seen"
	case tracker.CountdownActive(id):
		return "cooldown"
	default:
		return "-"
	}
}

func peerStyle(id, self wire.PeerID, tracker *band.Tracker) lipgloss.Style {
	switch {
	case id == self:
		return StylePeerSelf
	case tracker.CountdownActive(id):
		return StylePeerCooldown
	case tracker.Seen(id):
		return StylePeerSeen
	default:
		return StylePeerGone
	}
}
