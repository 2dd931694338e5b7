package band

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowband.dev/internal/config"
	"glowband.dev/internal/wire"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func highReport(peer wire.PeerID) wire.Report {
	return wire.Report{RSSI: config.SeenThreshold + 10, Peer: peer}
}

func lowReport(peer wire.PeerID) wire.Report {
	return wire.Report{RSSI: config.SeenThreshold, Peer: peer}
}

func TestHighRSSIMarksSeen(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	assert.True(t, tr.Seen(1))
	assert.True(t, tr.Ready(1))
}

func TestThresholdIsExclusive(t *testing.T) {
	tr := NewTracker(3)
	// RSSI equal to the threshold counts as loss, not presence.
	tr.Update(lowReport(1), t0)
	assert.False(t, tr.Seen(1))
}

func TestSelfReportsIgnored(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(3), t0)
	assert.False(t, tr.Seen(3))
	assert.False(t, tr.Ready(3))
}

func TestRepeatedHighRSSIIdempotent(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	before := *tr
	tr.Update(highReport(1), t0.Add(time.Second))
	assert.Equal(t, before, *tr)
}

func TestExplicitLossForceResets(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	tr.StartCountdown(1, t0)
	require.True(t, tr.CountdownActive(1))

	// One low sample clears seen and the countdown, no grace period.
	tr.Update(lowReport(1), t0.Add(time.Second))
	assert.False(t, tr.Seen(1))
	assert.False(t, tr.CountdownActive(1))
}

func TestCountdownExpiryBoundary(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(2), t0)
	tr.StartCountdown(2, t0)

	tr.Expire(t0.Add(config.ReactivateDelay - time.Millisecond))
	assert.True(t, tr.Seen(2), "before the deadline the peer stays seen")

	tr.Expire(t0.Add(config.ReactivateDelay))
	assert.True(t, tr.Seen(2), "expiry is strictly after the delay")

	tr.Expire(t0.Add(config.ReactivateDelay + time.Millisecond))
	assert.False(t, tr.Seen(2))
	assert.False(t, tr.CountdownActive(2))
}

func TestUpdateNeverStartsCountdown(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	assert.False(t, tr.CountdownActive(1))

	// Without a countdown, expiry never fires no matter how late.
	tr.Expire(t0.Add(time.Hour))
	assert.True(t, tr.Seen(1))
}

func TestFreshReportDuringCountdownDoesNotExtendIt(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	tr.StartCountdown(1, t0)

	tr.Update(highReport(1), t0.Add(config.ReactivateDelay))
	tr.Expire(t0.Add(config.ReactivateDelay + time.Millisecond))
	assert.False(t, tr.Seen(1), "continued proximity does not defer expiry")
}

func TestCooldownBlocksReady(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	tr.StartCountdown(1, t0)
	assert.True(t, tr.Seen(1))
	assert.False(t, tr.Ready(1))
}

func TestTakeLostOnExplicitLossOnly(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	tr.Update(lowReport(1), t0.Add(time.Second))

	id, ok := tr.TakeLost()
	require.True(t, ok)
	assert.Equal(t, wire.PeerID(1), id)

	_, ok = tr.TakeLost()
	assert.False(t, ok, "a transition is consumed once")
}

func TestExpiryDoesNotQueueLost(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	tr.StartCountdown(1, t0)
	tr.Expire(t0.Add(config.ReactivateDelay + time.Millisecond))

	_, ok := tr.TakeLost()
	assert.False(t, ok)
}

func TestReturnCancelsPendingLost(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(highReport(1), t0)
	tr.Update(lowReport(1), t0.Add(time.Second))
	tr.Update(highReport(1), t0.Add(2*time.Second))

	_, ok := tr.TakeLost()
	assert.False(t, ok)
	assert.True(t, tr.Seen(1))
}

func TestLossWhileNotSeenQueuesNothing(t *testing.T) {
	tr := NewTracker(3)
	tr.Update(lowReport(2), t0)
	_, ok := tr.TakeLost()
	assert.False(t, ok)
}
