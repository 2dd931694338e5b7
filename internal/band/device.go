package band

import (
	"time"

	"glowband.dev/internal/anim"
	"glowband.dev/internal/radio"
	"glowband.dev/internal/wire"
)

// Stats are cumulative radio counters for the status surface.
type Stats struct {
	BeaconsSent int
	ReportsSeen int
	Discarded   int
}

// Device is one band's firmware core: beacon, receiver, presence
// tracker and animation scheduler composed into a single-threaded
// cooperative tick. Each component owns its state exclusively and the
// tick order is fixed — beacon, receive, presence update, presence
// expire, one animation step — which is the scheduling contract that
// keeps the beacon and receiver from ever being starved by animation.
type Device struct {
	id        wire.PeerID
	transport radio.Transport

	beacon   *Beacon
	receiver *Receiver
	tracker  *Tracker
	sched    *anim.Scheduler

	stats Stats
}

// NewDevice wires a band's core around a transport and LED strip.
func NewDevice(id wire.PeerID, transport radio.Transport, strip anim.Strip) *Device {
	tracker := NewTracker(id)
	return &Device{
		id:        id,
		transport: transport,
		beacon:    NewBeacon(id, transport),
		receiver:  NewReceiver(transport),
		tracker:   tracker,
		sched:     anim.NewScheduler(strip, tracker),
	}
}

// Tick runs one pass of the cooperative schedule. now must come from a
// monotonic clock; every component gets the same value so a report
// arriving on an expiry deadline is not lost to a stale clear.
func (d *Device) Tick(now time.Time) {
	if d.beacon.Tick(now) {
		d.stats.BeaconsSent++
	}

	rep, ok := d.receiver.Tick()
	if ok {
		d.tracker.Update(rep, now)
		d.stats.ReportsSeen++
	}
	d.tracker.Expire(now)

	d.sched.Step(now)

	d.stats.Discarded = d.receiver.Discarded()
}

// ID returns this band's identity.
func (d *Device) ID() wire.PeerID { return d.id }

// Tracker exposes presence state for the UI.
func (d *Device) Tracker() *Tracker { return d.tracker }

// Scheduler exposes the animation state for the UI.
func (d *Device) Scheduler() *anim.Scheduler { return d.sched }

// Stats returns cumulative radio counters.
func (d *Device) Stats() Stats { return d.stats }
