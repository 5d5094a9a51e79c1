// Package emulator assembles the execution engine's default hardware
// configuration: a Cpu, a port bus bound with the built-in devices at
// their default port map, and the pipeline controller that drives a
// loaded Program.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/octo8vm/octo8/cpu"
	"github.com/octo8vm/octo8/device"
	octoio "github.com/octo8vm/octo8/internal"
	busio "github.com/octo8vm/octo8/io"
)

// Default port assignments for the built-in hardware configuration.
const (
	PortMultiplier = 0
	PortDivider    = 2
	PortRNG        = 4
	PortTimer      = 5
	PortDisplay    = 11
	PortConsole    = 32
	PortKeyboard   = 33
)

var _emulator_defines = map[string]string{
	"PORT_MULTIPLIER": fmt.Sprintf("%d", PortMultiplier),
	"PORT_DIVIDER":    fmt.Sprintf("%d", PortDivider),
	"PORT_RNG":        fmt.Sprintf("%d", PortRNG),
	"PORT_TIMER":      fmt.Sprintf("%d", PortTimer),
	"PORT_DISPLAY":    fmt.Sprintf("%d", PortDisplay),
	"PORT_CONSOLE":    fmt.Sprintf("%d", PortConsole),
	"PORT_KEYBOARD":   fmt.Sprintf("%d", PortKeyboard),
}

// Emulator is the CPU plus its I/O bus, default devices, and the
// pipeline driving whatever Program is currently loaded.
type Emulator struct {
	Verbose bool

	*cpu.Cpu
	Pipeline *cpu.Pipeline
	Program  *cpu.Program

	Bus     *busio.Bus
	Display *device.Display
}

// Option configures an Emulator's optional peripherals at construction.
type Option func(*config)

type config struct {
	consoleSink io.Writer
	pixelSink   device.PixelSink
	keyPoller   device.KeyPoller
	policy      busio.Policy
}

// WithConsole routes console output to sink instead of discarding it.
func WithConsole(sink io.Writer) Option {
	return func(c *config) { c.consoleSink = sink }
}

// WithDisplaySink routes committed pixels to sink in addition to the
// in-memory framebuffer queryable via Emulator.Display.GetPixel.
func WithDisplaySink(sink device.PixelSink) Option {
	return func(c *config) { c.pixelSink = sink }
}

// WithKeyboard binds the keyboard port to poller. Without this option
// the keyboard port is left unmapped.
func WithKeyboard(poller device.KeyPoller) Option {
	return func(c *config) { c.keyPoller = poller }
}

// WithUnmappedLoadPolicy overrides the bus's default strict policy for
// loads from unmapped ports.
func WithUnmappedLoadPolicy(policy busio.Policy) Option {
	return func(c *config) { c.policy = policy }
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// NewEmulator builds an Emulator with the default hardware
// configuration bound to the bus: multiplier, divider, RNG, timer, and
// pixel display are always present; console and keyboard follow the
// options given.
func NewEmulator(opts ...Option) *Emulator {
	c := config{consoleSink: discard{}, policy: busio.Strict}
	for _, opt := range opts {
		opt(&c)
	}

	bus := busio.NewBus(c.policy)

	multLow, multHigh := device.NewMultiplier()
	bus.MustBind(PortMultiplier, multLow)
	bus.MustBind(PortMultiplier+1, multHigh)

	divQ, divR := device.NewDivider()
	bus.MustBind(PortDivider, divQ)
	bus.MustBind(PortDivider+1, divR)

	bus.MustBind(PortRNG, device.NewRNG())

	for i, port := range device.NewTimer() {
		bus.MustBind(PortTimer+i, port)
	}

	display := device.NewDisplay(c.pixelSink)
	bus.MustBind(PortDisplay, display.R)
	bus.MustBind(PortDisplay+1, display.G)
	bus.MustBind(PortDisplay+2, display.B)
	bus.MustBind(PortDisplay+3, display.X)
	bus.MustBind(PortDisplay+4, display.Y)

	bus.MustBind(PortConsole, device.NewConsole(c.consoleSink))

	if c.keyPoller != nil {
		bus.MustBind(PortKeyboard, device.NewKeyboard(c.keyPoller))
	}

	emu := &Emulator{
		Cpu:     cpu.NewCpu(bus),
		Bus:     bus,
		Display: display,
	}
	empty, _ := cpu.NewProgram(nil)
	emu.Load(empty)
	return emu
}

// Load installs program as the currently running program and resets
// CPU state and the pipeline.
func (emu *Emulator) Load(program *cpu.Program) {
	emu.Program = program
	emu.Cpu.Reset()
	emu.Cpu.Verbose = emu.Verbose
	emu.Pipeline = cpu.NewPipeline(emu.Cpu, emu.Program)
}

// Defines returns an iterator over the engine's named constants,
// merging the CPU's and the emulator's own port-map defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return octoio.IterSeq2Concat(maps.All(_emulator_defines), emu.Cpu.Defines())
}

// Step advances the pipeline by one cycle. It wraps any error in
// ErrRuntime naming the PC active when the error occurred.
func (emu *Emulator) Step() error {
	emu.Cpu.Verbose = emu.Verbose
	pc := emu.Cpu.PC.Value()
	if err := emu.Pipeline.Step(); err != nil {
		return &ErrRuntime{Address: pc, Err: err}
	}
	return nil
}

// Run steps the pipeline until the CPU halts or Step returns an error.
func (emu *Emulator) Run() error {
	for !emu.Cpu.Halted {
		if err := emu.Step(); err != nil {
			return err
		}
	}
	return nil
}
