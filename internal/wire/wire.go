package wire

// On-air framing shared by every band on the channel.
// Outbound beacon:  SelfID(1) | Terminator(1)
// Inbound report:   RSSI(1) | PeerID(1) | Terminator(1)
// No checksum, no length prefix. The radio module prepends the measured
// link quality to each received beacon, which is how a 2-byte beacon
// arrives as a 3-byte report. Misalignment is only ever detected by a
// terminator mismatch; a dropped byte desyncs framing until a byte that
// happens to equal the terminator lands in the right slot. Inherited
// from the radio module's protocol, not fixable on this side.

// PeerID identifies a band on the shared channel, including self.
type PeerID uint8

const (
	// MaxPeer bounds the id space: valid ids are [0, MaxPeer).
	MaxPeer = 4

	// Terminator closes every frame.
	Terminator = 0x0A

	BeaconSize = 2
	ReportSize = 3
)

// Report is a decoded inbound frame: one peer beacon with the link
// quality measured by the radio module (larger = closer).
type Report struct {
	RSSI uint8
	Peer PeerID
}

// Valid reports whether id is inside the closed id range.
func (id PeerID) Valid() bool {
	return id < MaxPeer
}

// EncodeBeacon serialises this band's identity frame.
func EncodeBeacon(id PeerID) []byte {
	return []byte{byte(id), Terminator}
}

// DecodeReport parses a 3-byte inbound frame. It returns ok=false for
// any malformed frame: wrong length, bad terminator, or out-of-range
// peer id. Callers discard the bytes either way.
func DecodeReport(buf []byte) (Report, bool) {
	if len(buf) != ReportSize {
		return Report{}, false
	}
	if buf[2] != Terminator {
		return Report{}, false
	}
	id := PeerID(buf[1])
	if !id.Valid() {
		return Report{}, false
	}
	return Report{RSSI: buf[0], Peer: id}, true
}
