package band

import (
	"io"
	"time"

	"glowband.dev/internal/config"
	"glowband.dev/internal/wire"
)

// Beacon broadcasts this band's identity frame at a fixed per-device
// interval. The interval differs per identity so bands sharing the
// channel drift apart instead of colliding in lockstep. Transmission
// is fire-and-forget: the protocol has no acks and write failures are
// not observable here.
type Beacon struct {
	interval time.Duration
	last     time.Time
	out      io.Writer
	frame    []byte
}

// NewBeacon creates a beacon for the given identity writing to out.
func NewBeacon(id wire.PeerID, out io.Writer) *Beacon {
	return &Beacon{
		interval: config.BeaconIntervals[id],
		out:      out,
		frame:    wire.EncodeBeacon(id),
	}
}

// Tick emits one identity frame if the interval has elapsed (and on
// the very first tick). Reports whether a frame was sent.
func (b *Beacon) Tick(now time.Time) bool {
	if !b.last.IsZero() && now.Sub(b.last) < b.interval {
		return false
	}
	_, _ = b.out.Write(b.frame)
	b.last = now
	return true
}
