package cpu

import (
	"iter"
	"log"
	"maps"

	"github.com/octo8vm/octo8/io"
)

// Cpu is the aggregate execution context: register file, RAM, program
// counter and call stack, stack pointer, flags, and the port-mapped I/O
// bus. It owns everything except program memory and the pipeline, which
// belong to the pipeline controller.
type Cpu struct {
	Verbose bool // Set to enable verbose per-tick logging.

	Registers Registers
	RAM       RAM
	PC        ProgramCounter
	SP        StackPointer

	Z bool // Zero flag.
	C bool // Carry flag.

	Halted bool

	Ports *io.Bus
}

// NewCpu creates a CPU wired to the given I/O bus.
func NewCpu(ports *io.Bus) *Cpu {
	return &Cpu{Ports: ports}
}

// Reset clears registers, RAM, PC, call stack, SP, and flags, and
// unsets Halted. The port bus and its device bindings are untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Registers[:])
	clear(cpu.RAM[:])
	cpu.PC.reset()
	cpu.SP.reset()
	cpu.Z = false
	cpu.C = false
	cpu.Halted = false
}

// Defines returns an iterator over the architecture's named constants.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}
