package band

import (
	"time"

	"glowband.dev/internal/config"
	"glowband.dev/internal/wire"
)

// entry is one peer's presence record. resetAt is non-zero exactly
// while a reactivation countdown runs; both loss paths clear it.
type entry struct {
	seen     bool
	counting bool
	resetAt  time.Time
	lost     bool // seen→lost transition not yet consumed by the animation
}

// Tracker maintains per-peer presence from thresholded RSSI reports
// and time-based expiry. It is the only component that mutates the
// presence array; the scheduler reads it through the anim.Presence
// interface. Indexed by peer id — the id was bounds-checked at decode,
// so no checks are repeated here.
type Tracker struct {
	self    wire.PeerID
	entries [wire.MaxPeer]entry
}

// NewTracker creates a tracker that ignores reports echoing self.
func NewTracker(self wire.PeerID) *Tracker {
	return &Tracker{self: self}
}

// Update applies one decoded report. Above the threshold the peer is
// marked seen (idempotent, countdown untouched). At or below it the
// peer is force-reset: a single low-RSSI sample clears seen and any
// running countdown, no grace period.
func (t *Tracker) Update(rep wire.Report, now time.Time) {
	if rep.Peer == t.self {
		return
	}
	e := &t.entries[rep.Peer]

	if rep.RSSI > config.SeenThreshold {
		e.seen = true
		e.lost = false
		return
	}

	if e.seen {
		e.lost = true
	}
	e.seen = false
	e.counting = false
	e.resetAt = time.Time{}
}

// Expire runs after Update each tick with the same now. Any countdown
// older than the reactivation delay is cleared and its peer forced to
// not-seen. This soft path forgets peers that went silent rather than
// reporting a low RSSI; unlike explicit loss it does not queue a lost
// transition, because silence during cooldown is the normal state of a
// peer that is still around.
func (t *Tracker) Expire(now time.Time) {
	for i := range t.entries {
		e := &t.entries[i]
		if !e.counting {
			continue
		}
		if now.Sub(e.resetAt) > config.ReactivateDelay {
			e.counting = false
			e.resetAt = time.Time{}
			e.seen = false
		}
	}
}

// StartCountdown begins a peer's reactivation countdown. Only the
// animation scheduler calls this, when the peer's animation completes;
// Update never starts one.
func (t *Tracker) StartCountdown(id wire.PeerID, now time.Time) {
	e := &t.entries[id]
	e.counting = true
	e.resetAt = now
}

// Seen reports whether a peer is currently in range.
func (t *Tracker) Seen(id wire.PeerID) bool {
	return t.entries[id].seen
}

// CountdownActive reports whether a peer's reactivation countdown runs.
func (t *Tracker) CountdownActive(id wire.PeerID) bool {
	return t.entries[id].counting
}

// Ready reports whether a peer should be greeted: in range and not in
// its post-greeting cooldown. Self is never ready.
func (t *Tracker) Ready(id wire.PeerID) bool {
	e := t.entries[id]
	return e.seen && !e.counting
}

// TakeLost consumes one pending seen→lost transition, lowest id first.
func (t *Tracker) TakeLost() (wire.PeerID, bool) {
	for i := range t.entries {
		if t.entries[i].lost {
			t.entries[i].lost = false
			return wire.PeerID(i), true
		}
	}
	return 0, false
}
