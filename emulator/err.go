package emulator

import (
	"github.com/octo8vm/octo8/translate"
)

var f = translate.From

// ErrRuntime wraps a core execution error with the program address
// active when it occurred.
type ErrRuntime struct {
	Address uint16
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("addr %03x: %v", err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
