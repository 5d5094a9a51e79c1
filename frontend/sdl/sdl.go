// Package sdl provides an SDL2-backed pixel sink and key poller for the
// execution engine's display and keyboard ports.
package sdl

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/octo8vm/octo8/cpu"
	"github.com/octo8vm/octo8/device"
)

const scaleFactor = 4

// Screen owns an SDL window and renders committed pixels directly, one
// at a time, rather than buffering a full frame like a real raster
// display would. It satisfies device.PixelSink.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// NewScreen opens an SDL window sized to the engine's fixed display
// resolution. The caller must call Close when done.
func NewScreen() (*Screen, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow("octovm",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cpu.DISPLAY_WIDTH*scaleFactor, cpu.DISPLAY_HEIGHT*scaleFactor, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Screen{window: window, renderer: renderer}, nil
}

// SetPixel implements device.PixelSink.
func (s *Screen) SetPixel(x, y int, p device.Pixel) {
	s.renderer.SetDrawColor(p.R, p.G, p.B, 0xff)
	rect := &sdl.Rect{
		X: int32(x * scaleFactor),
		Y: int32(y * scaleFactor),
		W: scaleFactor,
		H: scaleFactor,
	}
	s.renderer.FillRect(rect)
	s.renderer.Present()
}

func (s *Screen) Close() {
	s.renderer.Destroy()
	s.window.Destroy()
	sdl.Quit()
}

// Keyboard polls SDL's event queue for key state and exposes it
// through device.KeyPoller. Unlike the teacher's interrupt-buffered
// keyboard, PressedKeys reports the currently-held set, matching the
// engine's poll-driven keyboard port.
type Keyboard struct {
	down map[byte]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{down: make(map[byte]bool)}
}

// PressedKeys implements device.KeyPoller. It drains pending SDL
// events, updates held-key state, and returns the keys currently down.
func (k *Keyboard) PressedKeys() []byte {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.KeyboardEvent:
			code, ok := asciiCode(t.Keysym)
			if !ok {
				continue
			}
			k.down[code] = t.State == sdl.PRESSED
		}
	}

	keys := make([]byte, 0, len(k.down))
	for code, pressed := range k.down {
		if pressed {
			keys = append(keys, code)
		}
	}
	return keys
}

// asciiCode maps an SDL keysym onto a single byte, matching the
// engine's byte-wide keyboard port. Non-printable keys are ignored.
func asciiCode(sym sdl.Keysym) (byte, bool) {
	if sym.Sym < 0x20 || sym.Sym > 0x7e {
		return 0, false
	}
	return byte(sym.Sym), true
}
