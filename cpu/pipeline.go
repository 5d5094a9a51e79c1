package cpu

import "log"

// Pipeline is the three-stage FIFO controller described in spec.md
// §4.8. It owns program memory and the fetch queue; the Cpu it drives
// owns everything else.
//
// Each Step makes one fetch/flush decision and applies it to whatever
// falls out of the far end of the FIFO that cycle: pushing a
// control-flow instruction schedules INSTRUCTION_PIPELINE_SIZE-1 NOPs
// with the PC held, while the instructions already in the FIFO execute
// without advancing the PC, followed by one more NOP pushed on the cycle
// the control-flow instruction itself reaches the head and executes, so
// the next fetch comes from the PC it set.
// This reproduces the branch-delay-flush behavior of the target
// architecture without ever fetching past a taken branch.
type Pipeline struct {
	cpu     *Cpu
	program *Program

	fifo [INSTRUCTION_PIPELINE_SIZE]pipelineSlot

	flushRemaining  int
	finalNopPending bool
}

type pipelineSlot struct {
	instr    Instruction
	executor Executor
}

var nopSlot = pipelineSlot{instr: Instruction{Mnemonic: MnNOP}, executor: &nopExecutor{}}

// NewPipeline creates a controller over program, initially filled with
// NOPs, driving cpu.
func NewPipeline(cpu *Cpu, program *Program) *Pipeline {
	p := &Pipeline{cpu: cpu, program: program}
	for i := range p.fifo {
		p.fifo[i] = nopSlot
	}
	return p
}

// Len reports the number of slots in the pipeline; it is always
// INSTRUCTION_PIPELINE_SIZE.
func (p *Pipeline) Len() int {
	return len(p.fifo)
}

// Step performs one fetch/advance/execute cycle. It is a no-op once the
// CPU has halted.
func (p *Pipeline) Step() error {
	if p.cpu.Halted {
		return nil
	}

	push, advancePC, err := p.selectNext()
	if err != nil {
		return err
	}

	popped := p.fifo[0]
	copy(p.fifo[:], p.fifo[1:])
	p.fifo[len(p.fifo)-1] = push

	if p.cpu.Verbose {
		log.Printf("%03x: %v", p.cpu.PC.Value(), popped.instr)
	}

	return Execute(popped.executor, p.cpu, advancePC)
}

// selectNext decides what to push into the pipeline this cycle and the
// advance_pc value that applies to whatever gets popped this cycle,
// following the flush-remaining / final-nop-pending state machine.
func (p *Pipeline) selectNext() (push pipelineSlot, advancePC bool, err error) {
	if p.flushRemaining > 0 {
		p.flushRemaining--
		return nopSlot, false, nil
	}

	if p.finalNopPending {
		p.finalNopPending = false
		return nopSlot, true, nil
	}

	instr, ex, err := p.program.At(p.cpu.PC.Value())
	if err != nil {
		return pipelineSlot{}, false, err
	}
	slot := pipelineSlot{instr: instr, executor: ex}

	if ex.ControlFlow() {
		p.flushRemaining = INSTRUCTION_PIPELINE_SIZE - 1
		p.finalNopPending = true
		return slot, false, nil
	}

	return slot, true, nil
}

// Run steps the pipeline until the CPU halts or Step returns an error.
func (p *Pipeline) Run() error {
	for !p.cpu.Halted {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}
