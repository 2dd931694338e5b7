package anim

// Color is one LED's RGB value.
type Color struct {
	R, G, B uint8
}

// Off is the unlit pixel value.
var Off = Color{}

// Strip is the LED driver surface the scheduler draws on. SetPixel
// stages a value, Show latches staged values onto the LEDs. The
// scheduler is the sole caller and never reads pixels back.
type Strip interface {
	SetPixel(i int, c Color)
	Show()
	PixelCount() int
}

// Buffer is an in-memory Strip. The simulator renders its latched
// pixels; tests inspect them.
type Buffer struct {
	staged  []Color
	latched []Color
}

// NewBuffer creates a buffer strip with n pixels, all off.
func NewBuffer(n int) *Buffer {
	return &Buffer{
		staged:  make([]Color, n),
		latched: make([]Color, n),
	}
}

func (b *Buffer) SetPixel(i int, c Color) {
	if i >= 0 && i < len(b.staged) {
		b.staged[i] = c
	}
}

func (b *Buffer) Show() {
	copy(b.latched, b.staged)
}

func (b *Buffer) PixelCount() int {
	return len(b.staged)
}

// Pixels returns a copy of the latched pixel values.
func (b *Buffer) Pixels() []Color {
	out := make([]Color, len(b.latched))
	copy(out, b.latched)
	return out
}
