package cpu

import (
	"errors"

	"github.com/octo8vm/octo8/translate"
)

var f = translate.From

var (
	// Fatal program errors: bugs in the loaded program or device wiring.
	ErrPcOverflow     = errors.New(f("pc overflow"))
	ErrCallStackEmpty = errors.New(f("call stack empty"))
	ErrStackOverflow  = errors.New(f("stack pointer overflow"))
	ErrStackUnderflow = errors.New(f("stack pointer underflow"))
	ErrAddressInvalid = errors.New(f("address out of range"))
	ErrProgramEmpty   = errors.New(f("pc past end of program"))
	ErrProgramTooBig  = errors.New(f("program exceeds max program size"))
	ErrHalted         = errors.New(f("cpu halted"))

	// Instruction decode errors.
	ErrOpcodeUnknown = errors.New(f("unknown mnemonic"))
	ErrOperandCount  = errors.New(f("wrong number of operands"))
	ErrOperandKind   = errors.New(f("wrong operand kind"))
	ErrRegisterRange = errors.New(f("register index out of range"))
	ErrConditionCode = errors.New(f("unknown condition code"))
)

// ErrInstruction wraps an underlying error with the offending decoded
// instruction, following the teacher's ErrOpcode wrapping pattern.
type ErrInstruction struct {
	Instruction Instruction
	Err         error
}

func (e ErrInstruction) Error() string {
	return f("%v: %v", e.Instruction.String(), e.Err)
}

func (e ErrInstruction) Unwrap() error {
	return e.Err
}

func (e ErrInstruction) Is(err error) bool {
	_, ok := err.(ErrInstruction)
	return ok
}

func wrapErr(instr Instruction, err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrInstruction{Instruction: instr, Err: err})
}
