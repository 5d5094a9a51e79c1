package emulator_test

import (
	"testing"

	"github.com/octo8vm/octo8/cpu"
	"github.com/octo8vm/octo8/device"
	"github.com/octo8vm/octo8/emulator"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, emu *emulator.Emulator, instrs ...cpu.Instruction) {
	t.Helper()
	program, err := cpu.NewProgram(instrs)
	require.NoError(t, err)
	emu.Load(program)
}

func TestEmulatorNewHasDefaultHardware(t *testing.T) {
	require := require.New(t)

	emu := emulator.NewEmulator()
	require.NotNil(emu.Bus)
	require.NotNil(emu.Display)
	require.True(emu.Bus.Bound(emulator.PortMultiplier))
	require.True(emu.Bus.Bound(emulator.PortDivider))
	require.True(emu.Bus.Bound(emulator.PortRNG))
	require.True(emu.Bus.Bound(emulator.PortTimer))
	require.True(emu.Bus.Bound(emulator.PortDisplay))
	require.True(emu.Bus.Bound(emulator.PortConsole))
	require.False(emu.Bus.Bound(emulator.PortKeyboard))
}

func TestEmulatorAddAndStore(t *testing.T) {
	require := require.New(t)

	emu := emulator.NewEmulator()
	mustLoad(t, emu,
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(10)}},
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(2), cpu.Num(20)}},
		cpu.Instruction{Mnemonic: cpu.MnADD, Operands: []cpu.Operand{cpu.Reg(1), cpu.Reg(1), cpu.Reg(2)}},
		cpu.Instruction{Mnemonic: cpu.MnMST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(0x00)}},
		cpu.Instruction{Mnemonic: cpu.MnHLT},
	)

	require.NoError(emu.Run())
	require.True(emu.Cpu.Halted)
	require.Equal(byte(30), emu.Cpu.Registers.Read(1))
	require.Equal(byte(30), emu.Cpu.RAM.Read(0))
}

func TestEmulatorJumpSkipsInstruction(t *testing.T) {
	require := require.New(t)

	emu := emulator.NewEmulator()
	mustLoad(t, emu,
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(10)}}, // 0
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(2), cpu.Num(20)}}, // 1
		cpu.Instruction{Mnemonic: cpu.MnJMP, Operands: []cpu.Operand{cpu.Addr(5)}},             // 2
		cpu.Instruction{Mnemonic: cpu.MnADD, Operands: []cpu.Operand{cpu.Reg(1), cpu.Reg(1), cpu.Reg(2)}}, // 3, skipped
		cpu.Instruction{Mnemonic: cpu.MnHLT}, // 4, skipped
		cpu.Instruction{Mnemonic: cpu.MnMOV, Operands: []cpu.Operand{cpu.Reg(3), cpu.Reg(1)}}, // 5
		cpu.Instruction{Mnemonic: cpu.MnHLT}, // 6
	)

	require.NoError(emu.Run())
	require.True(emu.Cpu.Halted)
	require.Equal(byte(10), emu.Cpu.Registers.Read(1))
	require.Equal(byte(10), emu.Cpu.Registers.Read(3))
}

func TestEmulatorCallAndReturn(t *testing.T) {
	require := require.New(t)

	emu := emulator.NewEmulator()
	mustLoad(t, emu,
		cpu.Instruction{Mnemonic: cpu.MnCAL, Operands: []cpu.Operand{cpu.Addr(3)}}, // 0
		cpu.Instruction{Mnemonic: cpu.MnHLT},                                       // 1, return lands here
		cpu.Instruction{Mnemonic: cpu.MnNOP},                                       // 2, filler
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(42)}}, // 3
		cpu.Instruction{Mnemonic: cpu.MnRET, Operands: []cpu.Operand{cpu.Num(0)}},               // 4
	)

	require.NoError(emu.Run())
	require.True(emu.Cpu.Halted)
	require.Equal(byte(42), emu.Cpu.Registers.Read(1))
	require.Equal(0, emu.Cpu.PC.CallDepth())
}

func TestEmulatorMultiplierDevice(t *testing.T) {
	require := require.New(t)

	emu := emulator.NewEmulator()
	mustLoad(t, emu,
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(100)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortMultiplier)}},
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(200)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortMultiplier + 1)}},
		cpu.Instruction{Mnemonic: cpu.MnPLD, Operands: []cpu.Operand{cpu.Reg(2), cpu.Num(emulator.PortMultiplier)}},
		cpu.Instruction{Mnemonic: cpu.MnPLD, Operands: []cpu.Operand{cpu.Reg(3), cpu.Num(emulator.PortMultiplier + 1)}},
		cpu.Instruction{Mnemonic: cpu.MnHLT},
	)

	require.NoError(emu.Run())
	require.Equal(byte(32), emu.Cpu.Registers.Read(2))
	require.Equal(byte(78), emu.Cpu.Registers.Read(3))
}

func TestEmulatorDividerByZero(t *testing.T) {
	require := require.New(t)

	emu := emulator.NewEmulator()
	mustLoad(t, emu,
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(0)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortDivider)}},
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(5)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortDivider + 1)}},
		cpu.Instruction{Mnemonic: cpu.MnPLD, Operands: []cpu.Operand{cpu.Reg(2), cpu.Num(emulator.PortDivider)}},
		cpu.Instruction{Mnemonic: cpu.MnPLD, Operands: []cpu.Operand{cpu.Reg(3), cpu.Num(emulator.PortDivider + 1)}},
		cpu.Instruction{Mnemonic: cpu.MnHLT},
	)

	require.NoError(emu.Run())
	require.Equal(byte(0xff), emu.Cpu.Registers.Read(2))
	require.Equal(byte(5), emu.Cpu.Registers.Read(3))
}

func TestEmulatorPixelCommit(t *testing.T) {
	require := require.New(t)

	emu := emulator.NewEmulator()
	mustLoad(t, emu,
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(255)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortDisplay)}},
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(128)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortDisplay + 1)}},
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(64)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortDisplay + 2)}},
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(10)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortDisplay + 4)}}, // Y, no commit
		cpu.Instruction{Mnemonic: cpu.MnLDI, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(5 | 0x80)}},
		cpu.Instruction{Mnemonic: cpu.MnPST, Operands: []cpu.Operand{cpu.Reg(1), cpu.Num(emulator.PortDisplay + 3)}}, // X, commits
		cpu.Instruction{Mnemonic: cpu.MnHLT},
	)

	require.NoError(emu.Run())
	require.Equal(device.Pixel{R: 255, G: 128, B: 64}, emu.Display.GetPixel(5, 10))
}
