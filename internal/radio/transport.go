package radio

import "io"

// ByteSource is the inbound side of a radio link. Buffered must never
// block: it reports how many received bytes can be read right now.
// Read drains at most Buffered() bytes and must not wait for more.
type ByteSource interface {
	Buffered() int
	Read(p []byte) (n int, err error)
}

// Transport is a full-duplex byte link to the shared radio channel.
// Writes are fire-and-forget: the protocol has no acknowledgment, so
// callers ignore errors beyond logging at the edge.
type Transport interface {
	ByteSource
	io.Writer
}
