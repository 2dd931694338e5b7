package band

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowband.dev/internal/config"
	"glowband.dev/internal/radio"
)

func TestBeaconFirstTickEmits(t *testing.T) {
	out, far := radio.NewLoopback()
	b := NewBeacon(3, out)

	require.True(t, b.Tick(t0))

	buf := make([]byte, 4)
	n, _ := far.Read(buf)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{3, 0x0A}, buf[:n])
}

func TestBeaconIntervalGating(t *testing.T) {
	out, far := radio.NewLoopback()
	b := NewBeacon(0, out)
	interval := config.BeaconIntervals[0]

	require.True(t, b.Tick(t0))
	assert.False(t, b.Tick(t0.Add(interval-time.Millisecond)))
	assert.True(t, b.Tick(t0.Add(interval)))

	assert.Equal(t, 2*2, far.Buffered(), "exactly two frames on the wire")
}
