package band

import (
	"glowband.dev/internal/radio"
	"glowband.dev/internal/wire"
)

// Receiver assembles fixed-size report frames from the radio byte
// stream without ever blocking the tick loop: it only reads once a
// full frame's worth of bytes is buffered. Malformed frames are
// consumed and dropped, never retried, so one bad byte cannot wedge
// the reader; it does mean framing stays misaligned until a stray
// terminator byte lines up again.
type Receiver struct {
	src       radio.ByteSource
	discarded int
}

// NewReceiver creates a receiver draining src.
func NewReceiver(src radio.ByteSource) *Receiver {
	return &Receiver{src: src}
}

// Tick consumes exactly one frame if one is fully buffered. It returns
// ok=false both when no frame is available yet and when the consumed
// frame was invalid.
func (r *Receiver) Tick() (wire.Report, bool) {
	if r.src.Buffered() < wire.ReportSize {
		return wire.Report{}, false
	}

	var buf [wire.ReportSize]byte
	n, err := r.src.Read(buf[:])
	if err != nil || n != wire.ReportSize {
		r.discarded++
		return wire.Report{}, false
	}

	rep, ok := wire.DecodeReport(buf[:])
	if !ok {
		r.discarded++
		return wire.Report{}, false
	}
	return rep, true
}

// Discarded returns how many consumed frames failed validation.
func (r *Receiver) Discarded() int {
	return r.discarded
}
