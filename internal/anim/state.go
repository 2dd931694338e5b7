package anim

import (
	"fmt"

	"glowband.dev/internal/wire"
)

// Phase names one animation stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWipeStart
	PhaseWipeRun
	PhaseLostFade
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWipeStart:
		return "wipe-start"
	case PhaseWipeRun:
		return "wipe"
	case PhaseLostFade:
		return "fade"
	case PhaseDone:
		return "done"
	}
	return "?"
}

// State is the scheduler's tagged variant: a phase plus the peer it
// concerns. Peer is meaningful for every phase except idle.
type State struct {
	Phase Phase
	Peer  wire.PeerID
}

func (s State) String() string {
	if s.Phase == PhaseIdle {
		return s.Phase.String()
	}
	return fmt.Sprintf("%s/peer%d", s.Phase, s.Peer)
}
