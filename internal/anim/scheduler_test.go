package anim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowband.dev/internal/anim"
	"glowband.dev/internal/config"
	"glowband.dev/internal/wire"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// countStrip records every driver call so tests can assert the
// one-pixel-per-tick bound.
type countStrip struct {
	n     int
	sets  int
	shows int
	last  struct {
		index int
		color anim.Color
	}
}

func (c *countStrip) SetPixel(i int, col anim.Color) {
	c.sets++
	c.last.index = i
	c.last.color = col
}
func (c *countStrip) Show()           { c.shows++ }
func (c *countStrip) PixelCount() int { return c.n }

type fakePresence struct {
	ready      [wire.MaxPeer]bool
	lost       []wire.PeerID
	countdowns []wire.PeerID
}

func (f *fakePresence) Ready(id wire.PeerID) bool { return f.ready[id] }

func (f *fakePresence) StartCountdown(id wire.PeerID, _ time.Time) {
	f.countdowns = append(f.countdowns, id)
	f.ready[id] = false
}

func (f *fakePresence) TakeLost() (wire.PeerID, bool) {
	if len(f.lost) == 0 {
		return 0, false
	}
	id := f.lost[0]
	f.lost = f.lost[1:]
	return id, true
}

func wipeSteps(peer wire.PeerID, pixels int) int {
	return pixels * len(anim.Palette[peer])
}

// runToDone drives a running wipe until the scheduler reaches Done,
// returning the advanced clock.
func runToDone(t *testing.T, s *anim.Scheduler, now time.Time) time.Time {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if s.State().Phase == anim.PhaseDone {
			return now
		}
		now = now.Add(config.WipeStepDelay)
		s.Step(now)
	}
	t.Fatal("wipe never completed")
	return now
}

func TestIdleWithNothingPendingDoesNothing(t *testing.T) {
	strip := &countStrip{n: 8}
	s := anim.NewScheduler(strip, &fakePresence{})

	s.Step(t0)
	assert.Equal(t, anim.PhaseIdle, s.State().Phase)
	assert.Zero(t, strip.sets)
	assert.Zero(t, strip.shows)
}

func TestWipeStartTransitionsSameTick(t *testing.T) {
	strip := &countStrip{n: 8}
	p := &fakePresence{}
	p.ready[1] = true
	s := anim.NewScheduler(strip, p)

	s.Step(t0)
	assert.Equal(t, anim.State{Phase: anim.PhaseWipeRun, Peer: 1}, s.State())
	assert.Equal(t, anim.State{Phase: anim.PhaseWipeStart, Peer: 1}, s.Prev())
	assert.Zero(t, strip.sets, "entry tick paints nothing")
}

func TestWipePaintsAtMostOnePixelPerTick(t *testing.T) {
	strip := &countStrip{n: 8}
	p := &fakePresence{}
	p.ready[0] = true
	s := anim.NewScheduler(strip, p)

	now := t0
	s.Step(now) // enter wipe

	steps := wipeSteps(0, strip.n)
	for i := 0; i < steps; i++ {
		// A tick before the step delay elapses does no work.
		s.Step(now.Add(config.WipeStepDelay / 2))
		assert.Equal(t, i, strip.sets)

		now = now.Add(config.WipeStepDelay)
		before := strip.sets
		s.Step(now)
		require.Equal(t, before+1, strip.sets, "tick %d", i)
		require.Equal(t, before+1, strip.shows)
	}

	assert.Equal(t, anim.PhaseDone, s.State().Phase)
	assert.Equal(t, anim.Palette[0][len(anim.Palette[0])-1], strip.last.color,
		"final paint uses the last color of the sub-sequence")
}

func TestDoneStartsCountdownThenGoesIdle(t *testing.T) {
	strip := &countStrip{n: 4}
	p := &fakePresence{}
	p.ready[2] = true
	s := anim.NewScheduler(strip, p)

	now := t0
	s.Step(now)
	now = runToDone(t, s, now)

	s.Step(now.Add(config.WipeStepDelay))
	assert.Equal(t, []wire.PeerID{2}, p.countdowns)
	assert.Equal(t, anim.PhaseIdle, s.State().Phase)
}

func TestDoneSelectsNextPeerRoundRobin(t *testing.T) {
	strip := &countStrip{n: 4}
	p := &fakePresence{}
	p.ready[0] = true
	p.ready[2] = true
	s := anim.NewScheduler(strip, p)

	now := t0
	s.Step(now) // rrStart=0, lowest ready id wins: peer 0
	require.Equal(t, wire.PeerID(0), s.State().Peer)
	now = runToDone(t, s, now)

	// Done step: countdown for 0, selection restarts at peer 1.
	s.Step(now.Add(config.WipeStepDelay))
	assert.Equal(t, anim.State{Phase: anim.PhaseWipeRun, Peer: 2}, s.State())
	assert.Equal(t, []wire.PeerID{0}, p.countdowns)
}

func TestLostFadeClearsStripThenIdles(t *testing.T) {
	strip := &countStrip{n: 6}
	p := &fakePresence{lost: []wire.PeerID{1}}
	s := anim.NewScheduler(strip, p)

	now := t0
	s.Step(now)
	require.Equal(t, anim.State{Phase: anim.PhaseLostFade, Peer: 1}, s.State())

	for i := 0; i < strip.n; i++ {
		now = now.Add(config.FadeStepDelay)
		s.Step(now)
	}
	assert.Equal(t, strip.n, strip.sets)
	assert.Equal(t, anim.Off, strip.last.color)
	assert.Equal(t, anim.PhaseIdle, s.State().Phase)
	assert.Empty(t, p.countdowns, "a departed peer gets no cooldown")
}

func TestLostPreferredOverGreeting(t *testing.T) {
	strip := &countStrip{n: 4}
	p := &fakePresence{lost: []wire.PeerID{2}}
	p.ready[0] = true
	s := anim.NewScheduler(strip, p)

	s.Step(t0)
	assert.Equal(t, anim.PhaseLostFade, s.State().Phase)
}
