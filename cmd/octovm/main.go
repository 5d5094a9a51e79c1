// Command octovm loads a decoded program and runs it against the
// engine's default hardware configuration. The line-oriented program
// format read here is a convenience for this command only; it is not
// part of the execution engine, which only ever consumes an
// already-decoded cpu.Program.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/octo8vm/octo8/cpu"
	"github.com/octo8vm/octo8/emulator"
	"github.com/octo8vm/octo8/frontend/console"
	frontendsdl "github.com/octo8vm/octo8/frontend/sdl"
	"github.com/octo8vm/octo8/io"
)

func main() {
	var progPath string
	var verbose bool
	var permissive bool
	var display string
	var keyboard string

	flag.StringVar(&progPath, "prog", "", "path to a line-oriented program file")
	flag.BoolVar(&verbose, "v", false, "verbose per-cycle logging")
	flag.BoolVar(&permissive, "permissive", false, "unmapped port loads return 0 instead of aborting")
	flag.StringVar(&display, "display", "none", "display sink: none or sdl")
	flag.StringVar(&keyboard, "keyboard", "none", "keyboard source: none, console, or sdl")
	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: unknown arguments: %v", os.Args[0], flag.Args())
	}

	if progPath == "" {
		log.Fatalf("%v: -prog is required", os.Args[0])
	}

	f, err := os.Open(progPath)
	if err != nil {
		log.Fatalf("%v: %v", progPath, err)
	}
	defer f.Close()

	instrs, err := parseProgram(f)
	if err != nil {
		log.Fatalf("%v: %v", progPath, err)
	}

	program, err := cpu.NewProgram(instrs)
	if err != nil {
		log.Fatalf("%v: %v", progPath, err)
	}

	policy := io.Strict
	if permissive {
		policy = io.Permissive
	}

	opts := []emulator.Option{
		emulator.WithConsole(os.Stdout),
		emulator.WithUnmappedLoadPolicy(policy),
	}

	switch display {
	case "none":
	case "sdl":
		screen, err := frontendsdl.NewScreen()
		if err != nil {
			log.Fatalf("display: %v", err)
		}
		defer screen.Close()
		opts = append(opts, emulator.WithDisplaySink(screen))
	default:
		log.Fatalf("unknown -display %q", display)
	}

	switch keyboard {
	case "none":
	case "console":
		kb, err := console.NewKeyboard()
		if err != nil {
			log.Fatalf("keyboard: %v", err)
		}
		defer kb.Close()
		opts = append(opts, emulator.WithKeyboard(kb))
	case "sdl":
		if display != "sdl" {
			log.Fatalf("-keyboard sdl requires -display sdl")
		}
		opts = append(opts, emulator.WithKeyboard(frontendsdl.NewKeyboard()))
	default:
		log.Fatalf("unknown -keyboard %q", keyboard)
	}

	emu := emulator.NewEmulator(opts...)
	emu.Verbose = verbose
	emu.Load(program)

	if err := emu.Run(); err != nil {
		log.Fatal(err)
	}
}

// parseProgram reads the line-oriented convenience format:
//
//	MNEMONIC [operand[, operand...]]
//
// Blank lines and lines starting with ';' are ignored. Operands are
// R0-R7 for a register, a bare unsigned integer for a numeric
// immediate, and @N for a program address.
func parseProgram(r *os.File) ([]cpu.Instruction, error) {
	var instrs []cpu.Instruction
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		instr := cpu.Instruction{Mnemonic: strings.ToUpper(fields[0])}
		if len(fields) == 2 {
			for _, raw := range strings.Split(fields[1], ",") {
				op, err := parseOperand(strings.TrimSpace(raw))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				instr.Operands = append(instr.Operands, op)
			}
		}
		instrs = append(instrs, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return instrs, nil
}

func parseOperand(tok string) (cpu.Operand, error) {
	switch {
	case strings.HasPrefix(tok, "@"):
		n, err := strconv.ParseUint(tok[1:], 0, 16)
		if err != nil {
			return cpu.Operand{}, fmt.Errorf("bad address %q: %w", tok, err)
		}
		return cpu.Addr(uint16(n)), nil
	case len(tok) == 2 && (tok[0] == 'R' || tok[0] == 'r') && tok[1] >= '0' && tok[1] <= '7':
		return cpu.Reg(tok[1] - '0'), nil
	default:
		n, err := strconv.ParseUint(tok, 0, 8)
		if err != nil {
			return cpu.Operand{}, fmt.Errorf("bad operand %q: %w", tok, err)
		}
		return cpu.Num(byte(n)), nil
	}
}
