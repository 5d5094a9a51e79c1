// Package io defines the port-mapped device contract shared by the octo8
// execution engine and its built-in peripherals: a byte-wide Device
// interface and the 256-slot Bus that binds devices to ports.
package io

// Device is a single port-mapped peripheral. A device may back more
// than one consecutive port by exposing one Device value per port that
// shares the device's internal state, following the multiplier/divider/
// timer/display pattern: each port gets its own thin adapter, and the
// adapters hold the shared state by reference.
type Device interface {
	// Load reads the current value visible at this port.
	Load() byte
	// Store writes a value to this port. Most devices never fail; a
	// device may return an error for a value it cannot accept (e.g. a
	// pixel coordinate outside the display bounds).
	Store(value byte) error
}
