package cpu

// pstExecutor implements PST reg, port: ports[port].Store(reg).
type pstExecutor struct{ reg, port byte }

func (e *pstExecutor) ControlFlow() bool { return false }
func (e *pstExecutor) apply(cpu *Cpu) error {
	return cpu.Ports.Write(int(e.port), cpu.Registers.Read(e.reg))
}

func decodePST(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 2); err != nil {
		return nil, err
	}
	reg, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	port, err := wantNumber(ops[1])
	if err != nil {
		return nil, err
	}
	return &pstExecutor{reg: reg, port: port}, nil
}

// dpsExecutor implements DPS regA, regB, port: stores regA to port and
// regB to port+1. Fatal if either port is unmapped.
type dpsExecutor struct{ regA, regB, port byte }

func (e *dpsExecutor) ControlFlow() bool { return false }
func (e *dpsExecutor) apply(cpu *Cpu) error {
	if err := cpu.Ports.Write(int(e.port), cpu.Registers.Read(e.regA)); err != nil {
		return err
	}
	return cpu.Ports.Write(int(e.port)+1, cpu.Registers.Read(e.regB))
}

func decodeDPS(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 3); err != nil {
		return nil, err
	}
	regA, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	regB, err := wantRegister(ops[1])
	if err != nil {
		return nil, err
	}
	port, err := wantNumber(ops[2])
	if err != nil {
		return nil, err
	}
	return &dpsExecutor{regA: regA, regB: regB, port: port}, nil
}

// pldExecutor implements PLD reg, port: reg <- ports[port].Load(); Z set.
type pldExecutor struct{ reg, port byte }

func (e *pldExecutor) ControlFlow() bool { return false }
func (e *pldExecutor) apply(cpu *Cpu) error {
	v, err := cpu.Ports.Read(int(e.port))
	if err != nil {
		return err
	}
	cpu.Registers.Write(e.reg, v)
	cpu.Z = v == 0
	return nil
}

func decodePLD(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 2); err != nil {
		return nil, err
	}
	reg, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	port, err := wantNumber(ops[1])
	if err != nil {
		return nil, err
	}
	return &pldExecutor{reg: reg, port: port}, nil
}

// nopExecutor implements NOP: no state change.
type nopExecutor struct{}

func (e *nopExecutor) ControlFlow() bool  { return false }
func (e *nopExecutor) apply(cpu *Cpu) error { return nil }

func decodeNOP(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 0); err != nil {
		return nil, err
	}
	return &nopExecutor{}, nil
}
