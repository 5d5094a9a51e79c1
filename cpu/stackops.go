package cpu

// pshExecutor implements PSH imm: RAM[SP] <- imm; SP.Increment(1).
type pshExecutor struct{ imm byte }

func (e *pshExecutor) ControlFlow() bool { return false }

func (e *pshExecutor) apply(cpu *Cpu) error {
	addr := cpu.SP.Value()
	if err := cpu.SP.Increment(1); err != nil {
		return err
	}
	cpu.RAM.Write(addr, e.imm)
	return nil
}

func decodePSH(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 1); err != nil {
		return nil, err
	}
	imm, err := wantNumber(ops[0])
	if err != nil {
		return nil, err
	}
	return &pshExecutor{imm: imm}, nil
}

// pshrExecutor implements PSHR/PHR reg: RAM[SP] <- reg; SP.Increment(1).
type pshrExecutor struct{ reg byte }

func (e *pshrExecutor) ControlFlow() bool { return false }

func (e *pshrExecutor) apply(cpu *Cpu) error {
	addr := cpu.SP.Value()
	if err := cpu.SP.Increment(1); err != nil {
		return err
	}
	cpu.RAM.Write(addr, cpu.Registers.Read(e.reg))
	return nil
}

func decodePSHR(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 1); err != nil {
		return nil, err
	}
	reg, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	return &pshrExecutor{reg: reg}, nil
}

// popExecutor implements POP n: SP.Decrement(n).
type popExecutor struct{ n byte }

func (e *popExecutor) ControlFlow() bool { return false }

func (e *popExecutor) apply(cpu *Cpu) error {
	return cpu.SP.Decrement(e.n)
}

func decodePOP(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 1); err != nil {
		return nil, err
	}
	n, err := wantNumber(ops[0])
	if err != nil {
		return nil, err
	}
	return &popExecutor{n: n}, nil
}

// pshmExecutor implements PSHM n: SP.Increment(n).
type pshmExecutor struct{ n byte }

func (e *pshmExecutor) ControlFlow() bool { return false }

func (e *pshmExecutor) apply(cpu *Cpu) error {
	return cpu.SP.Increment(e.n)
}

func decodePSHM(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 1); err != nil {
		return nil, err
	}
	n, err := wantNumber(ops[0])
	if err != nil {
		return nil, err
	}
	return &pshmExecutor{n: n}, nil
}
