package cpu

import "fmt"

const (
	NUM_REGISTERS             = 8    // R0..R7
	RAM_SIZE                  = 256  // bytes
	MAX_PROGRAM_SIZE          = 1024 // decoded instructions
	INSTRUCTION_PIPELINE_SIZE = 3    // fetch/advance/execute stages
	PORT_COUNT                = 256  // I/O port slots

	DISPLAY_WIDTH  = 128
	DISPLAY_HEIGHT = 128
)

var _cpu_defines = map[string]string{
	"NUM_REGISTERS":             fmt.Sprintf("%d", NUM_REGISTERS),
	"RAM_SIZE":                  fmt.Sprintf("%d", RAM_SIZE),
	"MAX_PROGRAM_SIZE":          fmt.Sprintf("%d", MAX_PROGRAM_SIZE),
	"INSTRUCTION_PIPELINE_SIZE": fmt.Sprintf("%d", INSTRUCTION_PIPELINE_SIZE),
	"PORT_COUNT":                fmt.Sprintf("%d", PORT_COUNT),
	"DISPLAY_WIDTH":             fmt.Sprintf("%d", DISPLAY_WIDTH),
	"DISPLAY_HEIGHT":            fmt.Sprintf("%d", DISPLAY_HEIGHT),
}
