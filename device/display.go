package device

import "github.com/octo8vm/octo8/cpu"

// Pixel is a single RGB triple, as returned by Display.GetPixel.
type Pixel struct {
	R, G, B byte
}

// PixelSink receives a committed pixel write. A sink that offloads
// rendering to a background worker must preserve the order in which
// pixels are committed on the executor thread; Display never waits on
// it.
type PixelSink interface {
	SetPixel(x, y int, p Pixel)
}

// displayState is the shared framebuffer and register file behind a
// pixel display's five ports.
type displayState struct {
	r, g, b byte
	x, y    byte

	framebuffer [cpu.DISPLAY_HEIGHT][cpu.DISPLAY_WIDTH]Pixel
	sink        PixelSink
}

func (s *displayState) commit() error {
	x, y := int(s.x), int(s.y)
	if x < 0 || x >= cpu.DISPLAY_WIDTH || y < 0 || y >= cpu.DISPLAY_HEIGHT {
		return ErrPixelCoordinateRange
	}
	p := Pixel{R: s.r, G: s.g, B: s.b}
	s.framebuffer[y][x] = p
	if s.sink != nil {
		s.sink.SetPixel(x, y, p)
	}
	return nil
}

// DisplayColor is one of the display's three color ports (R, G, or B).
type DisplayColor struct {
	state   *displayState
	channel func(*displayState) *byte
}

func (c *DisplayColor) Load() byte { return *c.channel(c.state) }
func (c *DisplayColor) Store(v byte) error {
	*c.channel(c.state) = v
	return nil
}

// DisplayCoord is one of the display's two coordinate ports (X or Y).
// A store's low 7 bits set the coordinate; a set high bit additionally
// commits the pixel at (X, Y) using the current color registers.
type DisplayCoord struct {
	state *displayState
	axis  func(*displayState) *byte
}

func (c *DisplayCoord) Load() byte { return *c.axis(c.state) }
func (c *DisplayCoord) Store(v byte) error {
	*c.axis(c.state) = v & 0x7f
	if v&0x80 != 0 {
		return c.state.commit()
	}
	return nil
}

// Display bundles the five port adapters of a pixel display along with
// the GetPixel hook tests use to observe committed pixels. Bind R, G,
// B, X, Y to five consecutive ports in that order.
type Display struct {
	R, G, B *DisplayColor
	X, Y    *DisplayCoord

	state *displayState
}

// NewDisplay creates a pixel display. sink may be nil; when non-nil it
// receives every committed pixel in commit order.
func NewDisplay(sink PixelSink) *Display {
	state := &displayState{sink: sink}
	return &Display{
		state: state,
		R:     &DisplayColor{state, func(s *displayState) *byte { return &s.r }},
		G:     &DisplayColor{state, func(s *displayState) *byte { return &s.g }},
		B:     &DisplayColor{state, func(s *displayState) *byte { return &s.b }},
		X:     &DisplayCoord{state, func(s *displayState) *byte { return &s.x }},
		Y:     &DisplayCoord{state, func(s *displayState) *byte { return &s.y }},
	}
}

// GetPixel returns the committed color at (x, y). Coordinates outside
// the framebuffer return the zero Pixel.
func (d *Display) GetPixel(x, y int) Pixel {
	if x < 0 || x >= cpu.DISPLAY_WIDTH || y < 0 || y >= cpu.DISPLAY_HEIGHT {
		return Pixel{}
	}
	return d.state.framebuffer[y][x]
}
