package io

import (
	"errors"

	"github.com/octo8vm/octo8/translate"
)

var f = translate.From

var (
	// ErrPortUnmapped is returned by Bus.Read/Bus.Write when the slot
	// has no bound device. Bus.Write always fails on an unmapped port;
	// Bus.Read fails only when the bus is in strict mode.
	ErrPortUnmapped = errors.New(f("port unmapped"))

	// ErrPortBound is returned by Bus.TryBind when the slot already
	// has a device bound to it.
	ErrPortBound = errors.New(f("port already bound"))

	// ErrPortRange is returned for a port index outside [0,256).
	ErrPortRange = errors.New(f("port out of range"))
)
