package cpu

// ProgramCounter is a 10-bit index into program memory, plus the
// independent LIFO return-address stack used by CAL/RET. The call
// stack is not part of RAM and carries no fixed depth bound here.
type ProgramCounter struct {
	value     uint16
	callStack []uint16
}

func (pc *ProgramCounter) Value() uint16 {
	return pc.value
}

// Increment advances the PC by one. Fails if the new value would run
// past the addressable range.
func (pc *ProgramCounter) Increment() error {
	next := pc.value + 1
	if next >= MAX_PROGRAM_SIZE {
		return ErrPcOverflow
	}
	pc.value = next
	return nil
}

// SetBranch sets the PC directly, as JMP and the taken side of BRH do.
func (pc *ProgramCounter) SetBranch(addr uint16) error {
	if addr >= MAX_PROGRAM_SIZE {
		return ErrAddressInvalid
	}
	pc.value = addr
	return nil
}

// PushCall pushes the return address (PC+1) and branches to addr, as CAL does.
func (pc *ProgramCounter) PushCall(addr uint16) error {
	if addr >= MAX_PROGRAM_SIZE {
		return ErrAddressInvalid
	}
	ret := pc.value + 1
	if ret >= MAX_PROGRAM_SIZE {
		return ErrPcOverflow
	}
	pc.callStack = append(pc.callStack, ret)
	pc.value = addr
	return nil
}

// PopReturn pops the call stack into the PC, as RET does.
func (pc *ProgramCounter) PopReturn() error {
	n := len(pc.callStack)
	if n == 0 {
		return ErrCallStackEmpty
	}
	pc.value = pc.callStack[n-1]
	pc.callStack = pc.callStack[:n-1]
	return nil
}

// CallDepth reports the number of pending return addresses.
func (pc *ProgramCounter) CallDepth() int {
	return len(pc.callStack)
}

func (pc *ProgramCounter) reset() {
	pc.value = 0
	pc.callStack = pc.callStack[:0]
}
