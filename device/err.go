package device

import (
	"errors"

	"github.com/octo8vm/octo8/translate"
)

var f = translate.From

var (
	// ErrPixelCoordinateRange is returned when a display coordinate
	// falls outside [0, DISPLAY_WIDTH) or [0, DISPLAY_HEIGHT).
	ErrPixelCoordinateRange = errors.New(f("pixel coordinate out of range"))
)
