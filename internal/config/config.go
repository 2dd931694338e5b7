package config

import "time"

const (
	// Presence
	SeenThreshold   = 30               // link-quality byte; above = in range
	ReactivateDelay = 12 * time.Second // cooldown before a greeted peer is forgotten

	// LED strip
	PixelCount    = 16
	WipeStepDelay = 40 * time.Millisecond // one pixel per step
	FadeStepDelay = 30 * time.Millisecond

	// Scheduler
	TargetFPS = 60 // simulator tick rate

	// Simulated peers (demo mode)
	SimEmitInterval = 250 * time.Millisecond
	SimNearRSSI     = 70 // comfortably above SeenThreshold
	SimRSSISwing    = 12

	// Serial transport
	DefaultBaud = 115200

	// App
	AppName    = "GLOWBAND"
	AppVersion = "1.0"
)

// BeaconIntervals staggers broadcast timing per device identity so bands
// sharing a channel don't transmit in lockstep. Indexed by peer id.
var BeaconIntervals = [4]time.Duration{
	997 * time.Millisecond,
	1009 * time.Millisecond,
	1013 * time.Millisecond,
	1021 * time.Millisecond,
}
