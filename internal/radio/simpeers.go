package radio

import (
	"context"
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"glowband.dev/internal/config"
	"glowband.dev/internal/wire"
)

type simPeer struct {
	base      float64
	phase     float64
	amplitude float64
	active    bool
}

// SimPeers emits synthetic report frames for every peer id except
// self, as the radio module would when real bands are nearby. RSSI
// follows a sinusoid with noise so presence flickers realistically
// near the threshold when a peer is toggled "far".
type SimPeers struct {
	self wire.PeerID
	out  io.Writer

	mu     sync.Mutex
	peers  [wire.MaxPeer]simPeer
	cancel context.CancelFunc
}

// NewSimPeers creates simulated peers writing frames to out, which is
// typically the far end of a loopback link.
func NewSimPeers(self wire.PeerID, out io.Writer) *SimPeers {
	s := &SimPeers{self: self, out: out}
	for i := range s.peers {
		s.peers[i] = simPeer{
			base:      config.SimNearRSSI,
			phase:     rand.Float64() * 2 * math.Pi,
			amplitude: float64(rand.Intn(config.SimRSSISwing)),
		}
	}
	return s
}

// Start begins emitting frames until Stop is called.
func (s *SimPeers) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.loop(ctx)
}

// Stop halts emission.
func (s *SimPeers) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Toggle flips a peer between nearby (emitting high-RSSI frames) and
// gone (emitting nothing). Returns the new state.
func (s *SimPeers) Toggle(id wire.PeerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !id.Valid() || id == s.self {
		return false
	}
	s.peers[id].active = !s.peers[id].active
	return s.peers[id].active
}

// Active reports whether a peer is currently emitting.
func (s *SimPeers) Active(id wire.PeerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return id.Valid() && s.peers[id].active
}

// ForceLoss emits one below-threshold frame for the first active peer,
// exercising the explicit-loss path.
func (s *SimPeers) ForceLoss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.peers {
		id := wire.PeerID(i)
		if id == s.self || !s.peers[i].active {
			continue
		}
		_, _ = s.out.Write([]byte{config.SeenThreshold - 10, byte(id), wire.Terminator})
		return
	}
}

func (s *SimPeers) loop(ctx context.Context) {
	ticker := time.NewTicker(config.SimEmitInterval)
	defer ticker.Stop()

	t := 0.0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t += config.SimEmitInterval.Seconds()
			s.emit(t)
		}
	}
}

func (s *SimPeers) emit(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.peers {
		id := wire.PeerID(i)
		if id == s.self || !s.peers[i].active {
			continue
		}
		p := &s.peers[i]
		rssi := p.base + p.amplitude*math.Sin(t*0.5+p.phase) + (rand.Float64()-0.5)*4
		if rssi < 0 {
			rssi = 0
		}
		if rssi > 255 {
			rssi = 255
		}
		_, _ = s.out.Write([]byte{byte(rssi), byte(id), wire.Terminator})
	}
}
