package cpu_test

import (
	"testing"

	"github.com/octo8vm/octo8/cpu"
	"github.com/octo8vm/octo8/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCpu() *cpu.Cpu {
	return cpu.NewCpu(io.NewBus(io.Strict))
}

func TestR0AlwaysReadsZero(t *testing.T) {
	assert := assert.New(t)

	c := newTestCpu()
	c.Registers.Write(0, 0xAB)
	assert.Equal(byte(0), c.Registers.Read(0))
}

func TestResetClearsState(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c := newTestCpu()
	c.Registers.Write(1, 0x42)
	c.RAM.Write(3, 0x99)
	require.NoError(c.PC.Increment())
	require.NoError(c.SP.Increment(4))
	c.Z = true
	c.C = true
	c.Halted = true

	c.Reset()

	assert.Equal(byte(0), c.Registers.Read(1))
	assert.Equal(byte(0), c.RAM.Read(3))
	assert.Equal(uint16(0), c.PC.Value())
	assert.Equal(byte(0), c.SP.Value())
	assert.False(c.Z)
	assert.False(c.C)
	assert.False(c.Halted)
}

func TestResetLeavesPortsBound(t *testing.T) {
	require := require.New(t)

	bus := io.NewBus(io.Strict)
	dev := &fakeDevice{}
	require.NoError(bus.TryBind(9, dev))

	c := cpu.NewCpu(bus)
	c.Reset()

	require.True(bus.Bound(9))
}

func TestPCBoundsAreEnforced(t *testing.T) {
	assert := assert.New(t)

	c := newTestCpu()
	assert.NoError(c.PC.SetBranch(cpu.MAX_PROGRAM_SIZE - 1))
	assert.ErrorIs(c.PC.Increment(), cpu.ErrPcOverflow)
	assert.ErrorIs(c.PC.SetBranch(cpu.MAX_PROGRAM_SIZE), cpu.ErrAddressInvalid)
}

func TestSPBoundsAreEnforced(t *testing.T) {
	assert := assert.New(t)

	c := newTestCpu()
	assert.NoError(c.SP.Increment(255))
	assert.ErrorIs(c.SP.Increment(1), cpu.ErrStackOverflow)
	assert.NoError(c.SP.Decrement(0))
}

func TestSPUnderflow(t *testing.T) {
	assert := assert.New(t)

	c := newTestCpu()
	assert.ErrorIs(c.SP.Decrement(1), cpu.ErrStackUnderflow)
}

func TestCallReturnRoundTrip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c := newTestCpu()
	require.NoError(c.PC.SetBranch(5))
	require.NoError(c.PC.PushCall(20))
	assert.Equal(uint16(20), c.PC.Value())
	assert.Equal(1, c.PC.CallDepth())

	require.NoError(c.PC.PopReturn())
	assert.Equal(uint16(6), c.PC.Value())
	assert.Equal(0, c.PC.CallDepth())
}

func TestReturnWithEmptyCallStack(t *testing.T) {
	assert := assert.New(t)

	c := newTestCpu()
	assert.ErrorIs(c.PC.PopReturn(), cpu.ErrCallStackEmpty)
}

type fakeDevice struct{ v byte }

func (d *fakeDevice) Load() byte          { return d.v }
func (d *fakeDevice) Store(v byte) error  { d.v = v; return nil }
