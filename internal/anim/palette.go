package anim

import "glowband.dev/internal/wire"

// Palette holds each peer's wipe color sub-sequence: the wipe runs the
// full strip once per color, in order.
var Palette = [wire.MaxPeer][]Color{
	{{R: 0, G: 255, B: 65}, {R: 0, G: 143, B: 17}},
	{{R: 0, G: 255, B: 170}, {R: 0, G: 170, B: 255}},
	{{R: 255, G: 204, B: 0}, {R: 255, G: 102, B: 0}},
	{{R: 204, G: 0, B: 255}, {R: 102, G: 0, B: 255}},
}
