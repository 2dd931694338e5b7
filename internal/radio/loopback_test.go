package radio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowband.dev/internal/radio"
)

func TestLoopbackDelivery(t *testing.T) {
	a, b := radio.NewLoopback()

	n, err := a.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, 3, b.Buffered())
	assert.Equal(t, 0, a.Buffered())

	buf := make([]byte, 3)
	n, err = b.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{1, 2, 3}, buf)
	assert.Equal(t, 0, b.Buffered())
}

func TestLoopbackReadNeverBlocks(t *testing.T) {
	a, _ := radio.NewLoopback()
	buf := make([]byte, 8)
	n, err := a.Read(buf)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoopbackPreservesOrderAcrossWrites(t *testing.T) {
	a, b := radio.NewLoopback()
	_, _ = a.Write([]byte{10})
	_, _ = a.Write([]byte{20, 30})

	buf := make([]byte, 2)
	n, _ := b.Read(buf)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{10, 20}, buf)
	assert.Equal(t, 1, b.Buffered())
}

func TestInject(t *testing.T) {
	a, _ := radio.NewLoopback()
	a.Inject([]byte{7, 8})
	assert.Equal(t, 2, a.Buffered())
}
