package cpu

// RAM is the flat 256-byte data memory, byte-addressed with a wrapping
// 8-bit index. Reads of never-written cells return 0.
type RAM [RAM_SIZE]byte

func (m *RAM) Read(addr byte) byte {
	return m[addr]
}

func (m *RAM) Write(addr byte, v byte) {
	m[addr] = v
}
