package cpu

// aluFunc is the single hook every ALU mnemonic implements: given the
// two operand bytes and the incoming carry, produce the result byte
// and the carry that should replace C. Logical variants always return
// carry=false; arithmetic and shift variants compute it.
type aluFunc func(a, b byte, cin bool) (result byte, carry bool)

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func computeADD(a, b byte, _ bool) (byte, bool) {
	sum := uint16(a) + uint16(b)
	return byte(sum), sum >= 0x100
}

func computeADC(a, b byte, cin bool) (byte, bool) {
	sum := uint16(a) + uint16(b) + uint16(boolToByte(cin))
	return byte(sum), sum >= 0x100
}

func computeSUB(a, b byte, _ bool) (byte, bool) {
	sum := uint16(a) + uint16(byte(^b)) + 1
	return byte(sum), sum >= 0x100
}

func computeSUBC(a, b byte, cin bool) (byte, bool) {
	sum := uint16(a) + uint16(byte(^b)) + uint16(boolToByte(cin))
	return byte(sum), sum >= 0x100
}

func computeAND(a, b byte, _ bool) (byte, bool) { return a & b, false }
func computeOR(a, b byte, _ bool) (byte, bool)  { return a | b, false }
func computeXOR(a, b byte, _ bool) (byte, bool) { return a ^ b, false }
func computeNOT(a, _ byte, _ bool) (byte, bool) { return ^a, false }

func computeSHFT(a, _ byte, _ bool) (byte, bool) {
	return a >> 1, (a & 1) != 0
}

func computeSHFC(a, _ byte, cin bool) (byte, bool) {
	result := (a >> 1) | (boolToByte(cin) << 7)
	return result, (a & 1) != 0
}

func computeSHFE(a, _ byte, _ bool) (byte, bool) {
	result := a >> 1
	if a&0x80 != 0 {
		result |= 0x80
	}
	return result, (a & 1) != 0
}

func computeSEX(a, _ byte, _ bool) (byte, bool) {
	if a&0x80 != 0 {
		return 0xFF, false
	}
	return 0x00, false
}

func computeMOV(a, _ byte, _ bool) (byte, bool) { return a, false }

// aluExecutor covers both the register form (dst, srcA[, srcB]) and the
// immediate forms ADI/SUBI (dst, srcA, imm): the only difference is
// whether the second operand is read from a register or taken as a
// literal byte.
type aluExecutor struct {
	compute aluFunc
	dst, a  byte
	b       byte
	bIsImm  bool
}

func (e *aluExecutor) ControlFlow() bool { return false }

func (e *aluExecutor) apply(cpu *Cpu) error {
	aVal := cpu.Registers.Read(e.a)
	var bVal byte
	if e.bIsImm {
		bVal = e.b
	} else {
		bVal = cpu.Registers.Read(e.b)
	}
	result, carry := e.compute(aVal, bVal, cpu.C)
	cpu.Registers.Write(e.dst, result)
	cpu.Z = result == 0
	cpu.C = carry
	return nil
}

// decodeAluReg builds a decoder for the register form: (dst, srcA[, srcB]).
// srcB defaults to R0 when omitted, which reads as zero.
func decodeAluReg(compute aluFunc) decodeFunc {
	return func(ops []Operand) (Executor, error) {
		if len(ops) != 2 && len(ops) != 3 {
			return nil, ErrOperandCount
		}
		dst, err := wantRegister(ops[0])
		if err != nil {
			return nil, err
		}
		a, err := wantRegister(ops[1])
		if err != nil {
			return nil, err
		}
		var b byte
		if len(ops) == 3 {
			b, err = wantRegister(ops[2])
			if err != nil {
				return nil, err
			}
		}
		return &aluExecutor{compute: compute, dst: dst, a: a, b: b}, nil
	}
}

// decodeAluImm builds a decoder for the immediate forms: (dst, srcA, imm).
func decodeAluImm(compute aluFunc) decodeFunc {
	return func(ops []Operand) (Executor, error) {
		if err := wantOperands(ops, 3); err != nil {
			return nil, err
		}
		dst, err := wantRegister(ops[0])
		if err != nil {
			return nil, err
		}
		a, err := wantRegister(ops[1])
		if err != nil {
			return nil, err
		}
		imm, err := wantNumber(ops[2])
		if err != nil {
			return nil, err
		}
		return &aluExecutor{compute: compute, dst: dst, a: a, b: imm, bIsImm: true}, nil
	}
}

// ldiExecutor implements LDI (dst, imm): dst <- imm, Z set, C unchanged.
type ldiExecutor struct {
	dst byte
	imm byte
}

func (e *ldiExecutor) ControlFlow() bool { return false }

func (e *ldiExecutor) apply(cpu *Cpu) error {
	cpu.Registers.Write(e.dst, e.imm)
	cpu.Z = e.imm == 0
	return nil
}

func decodeLDI(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 2); err != nil {
		return nil, err
	}
	dst, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	imm, err := wantNumber(ops[1])
	if err != nil {
		return nil, err
	}
	return &ldiExecutor{dst: dst, imm: imm}, nil
}

// cmovExecutor implements CMOV (dst, src, cond): conditionally copies
// src to dst and updates Z; leaves everything unchanged otherwise.
type cmovExecutor struct {
	dst, src byte
	cond     Cond
}

func (e *cmovExecutor) ControlFlow() bool { return false }

func (e *cmovExecutor) apply(cpu *Cpu) error {
	hold, err := e.cond.Holds(cpu)
	if err != nil {
		return err
	}
	if !hold {
		return nil
	}
	v := cpu.Registers.Read(e.src)
	cpu.Registers.Write(e.dst, v)
	cpu.Z = v == 0
	return nil
}

func decodeCMOV(ops []Operand) (Executor, error) {
	if err := wantOperands(ops, 3); err != nil {
		return nil, err
	}
	dst, err := wantRegister(ops[0])
	if err != nil {
		return nil, err
	}
	src, err := wantRegister(ops[1])
	if err != nil {
		return nil, err
	}
	condNum, err := wantNumber(ops[2])
	if err != nil {
		return nil, err
	}
	if condNum > 3 {
		return nil, ErrConditionCode
	}
	return &cmovExecutor{dst: dst, src: src, cond: Cond(condNum)}, nil
}
