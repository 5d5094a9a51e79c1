package cpu

// wrap8 reduces a signed intermediate to a wrapping 8-bit RAM address.
func wrap8(v int) byte {
	v %= 256
	if v < 0 {
		v += 256
	}
	return byte(v)
}

type addressMode int

const (
	addrAbsolute addressMode = iota
	addrPointerOffset
	addrStackOffset
	addrStackPointerOffset
)

// resolveAddress computes the 8-bit RAM address for one of the four
// addressing modes described in spec.md §4.7. offset is interpreted as
// signed 8-bit two's complement; ptr is a register value.
func resolveAddress(cpu *Cpu, mode addressMode, ptrReg byte, absAddr byte, offset int8) byte {
	switch mode {
	case addrAbsolute:
		return absAddr
	case addrPointerOffset:
		ptr := cpu.Registers.Read(ptrReg)
		return wrap8(int(ptr) - int(offset) - 1)
	case addrStackOffset:
		sp := cpu.SP.Value()
		return wrap8(int(sp) - int(offset) - 1)
	case addrStackPointerOffset:
		sp := cpu.SP.Value()
		ptr := cpu.Registers.Read(ptrReg)
		return wrap8((int(sp) - int(offset) - 1) - int(ptr) - 1)
	default:
		return 0
	}
}

// memStore implements MST/MSP/MSS/MSPS: store reg to a computed RAM
// address. No flag changes.
type memStore struct {
	mode        addressMode
	reg, ptrReg byte
	absAddr     byte
	offset      int8
}

func (e *memStore) ControlFlow() bool { return false }

func (e *memStore) apply(cpu *Cpu) error {
	addr := resolveAddress(cpu, e.mode, e.ptrReg, e.absAddr, e.offset)
	cpu.RAM.Write(addr, cpu.Registers.Read(e.reg))
	return nil
}

// memLoad implements MLD/MLP/MLS/MLPS: load a computed RAM address into
// dst and set Z. C is unchanged.
type memLoad struct {
	mode        addressMode
	dst, ptrReg byte
	absAddr     byte
	offset      int8
}

func (e *memLoad) ControlFlow() bool { return false }

func (e *memLoad) apply(cpu *Cpu) error {
	addr := resolveAddress(cpu, e.mode, e.ptrReg, e.absAddr, e.offset)
	v := cpu.RAM.Read(addr)
	cpu.Registers.Write(e.dst, v)
	cpu.Z = v == 0
	return nil
}

func decodeMST(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 2); err != nil {
		return nil, err
	}
	reg, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	addr, err := wantNumber(ops[1])
	if err != nil {
		return nil, err
	}
	return &memStore{mode: addrAbsolute, reg: reg, absAddr: addr}, nil
}

func decodeMSP(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 3); err != nil {
		return nil, err
	}
	reg, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	ptr, err := wantRegister(ops[1])
	if err != nil {
		return nil, err
	}
	offset, err := wantNumber(ops[2])
	if err != nil {
		return nil, err
	}
	return &memStore{mode: addrPointerOffset, reg: reg, ptrReg: ptr, offset: int8(offset)}, nil
}

func decodeMSS(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 2); err != nil {
		return nil, err
	}
	reg, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	offset, err := wantNumber(ops[1])
	if err != nil {
		return nil, err
	}
	return &memStore{mode: addrStackOffset, reg: reg, offset: int8(offset)}, nil
}

func decodeMSPS(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 3); err != nil {
		return nil, err
	}
	reg, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	ptr, err := wantRegister(ops[1])
	if err != nil {
		return nil, err
	}
	offset, err := wantNumber(ops[2])
	if err != nil {
		return nil, err
	}
	return &memStore{mode: addrStackPointerOffset, reg: reg, ptrReg: ptr, offset: int8(offset)}, nil
}

func decodeMLD(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 2); err != nil {
		return nil, err
	}
	dst, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	addr, err := wantNumber(ops[1])
	if err != nil {
		return nil, err
	}
	return &memLoad{mode: addrAbsolute, dst: dst, absAddr: addr}, nil
}

func decodeMLP(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 3); err != nil {
		return nil, err
	}
	dst, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	ptr, err := wantRegister(ops[1])
	if err != nil {
		return nil, err
	}
	offset, err := wantNumber(ops[2])
	if err != nil {
		return nil, err
	}
	return &memLoad{mode: addrPointerOffset, dst: dst, ptrReg: ptr, offset: int8(offset)}, nil
}

func decodeMLS(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 2); err != nil {
		return nil, err
	}
	dst, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	offset, err := wantNumber(ops[1])
	if err != nil {
		return nil, err
	}
	return &memLoad{mode: addrStackOffset, dst: dst, offset: int8(offset)}, nil
}

func decodeMLPS(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 3); err != nil {
		return nil, err
	}
	dst, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	ptr, err := wantRegister(ops[1])
	if err != nil {
		return nil, err
	}
	offset, err := wantNumber(ops[2])
	if err != nil {
		return nil, err
	}
	return &memLoad{mode: addrStackPointerOffset, dst: dst, ptrReg: ptr, offset: int8(offset)}, nil
}
