package cpu

// Executor is the decoded, directly-runnable form of an Instruction. It
// is idempotent and side-effect-free to build; Decode may be called
// once per Instruction and the result reused for every fetch of that
// program address, which is exactly what Program does.
type Executor interface {
	// ControlFlow reports whether this instruction manages the PC
	// itself. Control-flow instructions are never auto-advanced by
	// Execute, and trigger the pipeline's flush discipline.
	ControlFlow() bool

	apply(cpu *Cpu) error
}

// Execute is the single entry point described by the executor dispatch
// design: apply the instruction's semantics, then advance the PC if
// requested and the instruction does not manage the PC itself.
func Execute(ex Executor, cpu *Cpu, advancePC bool) error {
	if err := ex.apply(cpu); err != nil {
		return err
	}
	if advancePC && !ex.ControlFlow() {
		return cpu.PC.Increment()
	}
	return nil
}

type decodeFunc func(ops []Operand) (Executor, error)

// decodeTable is the exhaustive mnemonic dispatch table. It is built
// once, at package init, from an explicit map literal: no reflection,
// no per-instruction type lookup.
var decodeTable = map[string]decodeFunc{
	MnADD:  decodeAluReg(computeADD),
	MnADC:  decodeAluReg(computeADC),
	MnSUB:  decodeAluReg(computeSUB),
	MnSUBC: decodeAluReg(computeSUBC),
	MnAND:  decodeAluReg(computeAND),
	MnOR:   decodeAluReg(computeOR),
	MnXOR:  decodeAluReg(computeXOR),
	MnNOT:  decodeAluReg(computeNOT),
	MnSHFT: decodeAluReg(computeSHFT),
	MnSHFC: decodeAluReg(computeSHFC),
	MnSHFE: decodeAluReg(computeSHFE),
	MnSEX:  decodeAluReg(computeSEX),
	MnMOV:  decodeAluReg(computeMOV),

	MnADI:  decodeAluImm(computeADD),
	MnSUBI: decodeAluImm(computeSUB),
	MnLDI:  decodeLDI,

	MnCMOV: decodeCMOV,

	MnMST:  decodeMST,
	MnMSP:  decodeMSP,
	MnMSS:  decodeMSS,
	MnMSPS: decodeMSPS,
	MnMLD:  decodeMLD,
	MnMLP:  decodeMLP,
	MnMLS:  decodeMLS,
	MnMLPS: decodeMLPS,

	MnPSH:  decodePSH,
	MnPSHR: decodePSHR,
	MnPHR:  decodePSHR,
	MnPOP:  decodePOP,
	MnPSHM: decodePSHM,

	MnJMP: decodeJMP,
	MnBRH: decodeBRH,
	MnCAL: decodeCAL,
	MnRET: decodeRET,
	MnHLT: decodeHLT,

	MnPST: decodePST,
	MnDPS: decodeDPS,
	MnPLD: decodePLD,

	MnNOP: decodeNOP,
}

// Decode builds the Executor for a single decoded Instruction.
func Decode(instr Instruction) (Executor, error) {
	fn, ok := decodeTable[instr.Mnemonic]
	if !ok {
		return nil, wrapErr(instr, ErrOpcodeUnknown)
	}
	ex, err := fn(instr.Operands)
	if err != nil {
		return nil, wrapErr(instr, err)
	}
	return ex, nil
}

func wantOperands(ops []Operand, n int) error {
	if len(ops) != n {
		return ErrOperandCount
	}
	return nil
}

func wantRegister(op Operand) (byte, error) {
	if op.Kind != OperandRegister {
		return 0, ErrOperandKind
	}
	if op.Reg > 7 {
		return 0, ErrRegisterRange
	}
	return op.Reg, nil
}

func wantNumber(op Operand) (byte, error) {
	if op.Kind != OperandNumber {
		return 0, ErrOperandKind
	}
	return op.Num, nil
}

func wantAddress(op Operand) (uint16, error) {
	if op.Kind != OperandAddress {
		return 0, ErrOperandKind
	}
	if op.Addr >= MAX_PROGRAM_SIZE {
		return 0, ErrAddressInvalid
	}
	return op.Addr, nil
}
