package cpu

import "iter"

// Program is the ordered, already-decoded instruction stream the
// executor consumes. It carries no source location or label
// information; that is the assembling collaborator's responsibility.
type Program struct {
	Instructions []Instruction
	executors    []Executor
}

// NewProgram decodes every instruction once, up front, and rejects a
// program larger than MAX_PROGRAM_SIZE. The returned Program's
// executors are cached for the lifetime of the run.
func NewProgram(instructions []Instruction) (*Program, error) {
	if len(instructions) > MAX_PROGRAM_SIZE {
		return nil, ErrProgramTooBig
	}
	executors := make([]Executor, len(instructions))
	for n, instr := range instructions {
		ex, err := Decode(instr)
		if err != nil {
			return nil, err
		}
		executors[n] = ex
	}
	return &Program{Instructions: instructions, executors: executors}, nil
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.Instructions)
}

// At returns the decoded instruction and its cached Executor at addr.
// Fails if addr is past the end of the program.
func (p *Program) At(addr uint16) (Instruction, Executor, error) {
	if int(addr) >= len(p.Instructions) {
		return Instruction{}, nil, ErrProgramEmpty
	}
	return p.Instructions[addr], p.executors[addr], nil
}

// All iterates the program in address order.
func (p *Program) All() iter.Seq2[uint16, Instruction] {
	return func(yield func(uint16, Instruction) bool) {
		for n, instr := range p.Instructions {
			if !yield(uint16(n), instr) {
				return
			}
		}
	}
}
