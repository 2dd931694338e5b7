package anim

import (
	"time"

	"glowband.dev/internal/config"
	"glowband.dev/internal/wire"
)

// Presence is the view of the tracker the scheduler needs. Ready means
// a peer is seen and not inside its reactivation cooldown. TakeLost
// consumes one pending seen→lost transition, if any.
type Presence interface {
	Ready(id wire.PeerID) bool
	StartCountdown(id wire.PeerID, now time.Time)
	TakeLost() (wire.PeerID, bool)
}

// phaseContext is the transient working data of the running phase,
// reset on every phase entry.
type phaseContext struct {
	index     int
	colorStep int
	start     time.Time
	stepAt    time.Time
	delay     time.Duration
}

// Scheduler advances the LED animation one bounded step per tick. It
// touches at most one pixel per Step call, so the beacon and receiver
// ticks around it are never starved. All timing comes from the caller's
// clock; the scheduler never sleeps.
type Scheduler struct {
	strip    Strip
	presence Presence

	state State
	prev  State
	ctx   phaseContext

	// rrStart seeds round-robin selection: the peer after the one
	// whose wipe completed last, so no peer is starved.
	rrStart wire.PeerID
}

// NewScheduler creates an idle scheduler drawing on strip.
func NewScheduler(strip Strip, presence Presence) *Scheduler {
	return &Scheduler{strip: strip, presence: presence}
}

// State returns the current animation state.
func (s *Scheduler) State() State { return s.state }

// Prev returns the state one step back.
func (s *Scheduler) Prev() State { return s.prev }

// Step advances the animation by at most one pixel. Called once per
// scheduler tick, after presence update/expire.
func (s *Scheduler) Step(now time.Time) {
	switch s.state.Phase {
	case PhaseIdle:
		if peer, ok := s.presence.TakeLost(); ok {
			s.enterFade(peer, now)
			return
		}
		if peer, ok := s.nextReady(); ok {
			s.enterWipe(peer, now)
		}

	case PhaseWipeRun:
		s.stepWipe(now)

	case PhaseLostFade:
		s.stepFade(now)

	case PhaseDone:
		// The completed peer starts its reactivation cooldown here:
		// re-triggering follows a finished reaction, not raw radio
		// traffic.
		finished := s.state.Peer
		s.presence.StartCountdown(finished, now)
		s.rrStart = (finished + 1) % wire.MaxPeer
		if peer, ok := s.nextReady(); ok {
			s.enterWipe(peer, now)
			return
		}
		s.transition(State{Phase: PhaseIdle})
	}
}

// enterWipe enters a peer's wipe-start phase and takes the
// unconditional wipe-start → wipe-working transition on the same tick,
// leaving wipe-start observable only in Prev.
func (s *Scheduler) enterWipe(peer wire.PeerID, now time.Time) {
	s.transition(State{Phase: PhaseWipeStart, Peer: peer})
	s.ctx = phaseContext{
		start:  now,
		stepAt: now,
		delay:  config.WipeStepDelay,
	}
	s.transition(State{Phase: PhaseWipeRun, Peer: peer})
}

func (s *Scheduler) enterFade(peer wire.PeerID, now time.Time) {
	s.transition(State{Phase: PhaseLostFade, Peer: peer})
	s.ctx = phaseContext{
		start:  now,
		stepAt: now,
		delay:  config.FadeStepDelay,
	}
}

func (s *Scheduler) stepWipe(now time.Time) {
	if now.Sub(s.ctx.stepAt) < s.ctx.delay {
		return
	}
	seq := Palette[s.state.Peer]
	s.strip.SetPixel(s.ctx.index, seq[s.ctx.colorStep])
	s.strip.Show()
	s.ctx.stepAt = now

	s.ctx.index++
	if s.ctx.index < s.strip.PixelCount() {
		return
	}
	s.ctx.index = 0
	s.ctx.colorStep++
	if s.ctx.colorStep < len(seq) {
		return
	}
	s.transition(State{Phase: PhaseDone, Peer: s.state.Peer})
}

func (s *Scheduler) stepFade(now time.Time) {
	if now.Sub(s.ctx.stepAt) < s.ctx.delay {
		return
	}
	s.strip.SetPixel(s.ctx.index, Off)
	s.strip.Show()
	s.ctx.stepAt = now

	s.ctx.index++
	if s.ctx.index < s.strip.PixelCount() {
		return
	}
	s.transition(State{Phase: PhaseIdle})
}

// nextReady scans all peers round-robin from rrStart and returns the
// first ready one.
func (s *Scheduler) nextReady() (wire.PeerID, bool) {
	for i := 0; i < wire.MaxPeer; i++ {
		id := (s.rrStart + wire.PeerID(i)) % wire.MaxPeer
		if s.presence.Ready(id) {
			return id, true
		}
	}
	return 0, false
}

func (s *Scheduler) transition(next State) {
	s.prev = s.state
	s.state = next
}
