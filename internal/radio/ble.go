package radio

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"tinygo.org/x/bluetooth"

	"glowband.dev/internal/wire"
)

const bleNamePrefix = "GLOWBAND-"

// Bridge carries the band protocol over BLE advertisements instead of
// a dedicated radio module. The outbound beacon is a running
// advertisement named after this band's id; inbound report frames are
// synthesized from scan results of peer advertisements, with the scan
// RSSI mapped onto the wire's unsigned link-quality byte. The core
// reads and writes the same frames either way.
type Bridge struct {
	self    wire.PeerID
	adapter *bluetooth.Adapter
	adv     *bluetooth.Advertisement
	running bool

	mu  sync.Mutex
	buf []byte
}

// NewBridge creates a bridge for the default adapter.
func NewBridge(self wire.PeerID) *Bridge {
	return &Bridge{
		self:    self,
		adapter: bluetooth.DefaultAdapter,
	}
}

// Start enables the adapter, begins advertising this band's identity,
// and starts scanning for peers in a goroutine.
func (b *Bridge) Start() error {
	if err := b.adapter.Enable(); err != nil {
		return fmt.Errorf("enable BLE adapter: %w (try sudo or setcap cap_net_admin+ep)", err)
	}

	b.adv = b.adapter.DefaultAdvertisement()
	if err := b.adv.Configure(bluetooth.AdvertisementOptions{
		LocalName: bleNamePrefix + strconv.Itoa(int(b.self)),
	}); err != nil {
		return fmt.Errorf("configure advertisement: %w", err)
	}
	if err := b.adv.Start(); err != nil {
		return fmt.Errorf("start advertisement: %w", err)
	}

	b.running = true
	go func() {
		_ = b.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !b.running {
				return
			}
			id, ok := parsePeerName(result.LocalName())
			if !ok || id == b.self {
				return
			}
			b.mu.Lock()
			b.buf = append(b.buf, rssiByte(result.RSSI), byte(id), wire.Terminator)
			b.mu.Unlock()
		})
	}()

	return nil
}

// Stop halts scanning and advertising.
func (b *Bridge) Stop() {
	b.running = false
	_ = b.adapter.StopScan()
	if b.adv != nil {
		_ = b.adv.Stop()
	}
}

// Buffered reports how many synthesized frame bytes are readable.
func (b *Bridge) Buffered() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buf)
}

// Read drains synthesized frame bytes without blocking.
func (b *Bridge) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := copy(p, b.buf)
	b.buf = b.buf[n:]
	return n, nil
}

// Write accepts outbound beacon frames and discards them: the running
// advertisement already broadcasts this band's identity continuously,
// which is strictly more often than the beacon interval asks for.
func (b *Bridge) Write(p []byte) (int, error) {
	return len(p), nil
}

// parsePeerName extracts a peer id from an advertised local name of
// the form "GLOWBAND-<id>".
func parsePeerName(name string) (wire.PeerID, bool) {
	rest, found := strings.CutPrefix(name, bleNamePrefix)
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	id := wire.PeerID(n)
	if !id.Valid() {
		return 0, false
	}
	return id, true
}

// rssiByte maps a dBm scan RSSI onto the wire's unsigned scale where
// larger means closer. -100 dBm and below clamp to 0.
func rssiByte(dbm int16) byte {
	v := int(dbm) + 100
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
