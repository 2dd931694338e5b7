package radio

import "sync"

// End is one side of an in-memory loopback link. Bytes written to one
// end become readable on the other. Used by the simulator and tests in
// place of a physical radio module.
type End struct {
	mu   sync.Mutex
	buf  []byte
	peer *End
}

// NewLoopback returns two connected ends.
func NewLoopback() (*End, *End) {
	a := &End{}
	b := &End{}
	a.peer = b
	b.peer = a
	return a, b
}

// Write delivers p to the peer end.
func (e *End) Write(p []byte) (int, error) {
	e.peer.inject(p)
	return len(p), nil
}

// Inject queues bytes for reading on this end without involving the
// peer, as if they arrived over the air.
func (e *End) Inject(p []byte) {
	e.inject(p)
}

func (e *End) inject(p []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf = append(e.buf, p...)
}

// Buffered reports how many bytes are readable without blocking.
func (e *End) Buffered() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.buf)
}

// Read drains up to len(p) buffered bytes. It never blocks; with no
// bytes buffered it returns (0, nil).
func (e *End) Read(p []byte) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := copy(p, e.buf)
	e.buf = e.buf[n:]
	return n, nil
}
