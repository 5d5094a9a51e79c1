package io

// PortCount is the number of addressable I/O slots on the bus.
const PortCount = 256

// Policy controls how Bus.Read behaves on an unmapped port.
type Policy bool

const (
	// Strict is the default: a load from an unmapped port is fatal.
	Strict Policy = false
	// Permissive relaxes unmapped loads to "return 0"; unmapped stores
	// remain fatal either way.
	Permissive Policy = true
)

// Bus is the 256-slot port-mapped I/O bus. Bindings are established
// once during construction and are immutable thereafter: TryBind only
// succeeds on an empty slot.
type Bus struct {
	policy  Policy
	devices [PortCount]Device
}

// NewBus creates an empty bus with the given unmapped-load policy.
func NewBus(policy Policy) *Bus {
	return &Bus{policy: policy}
}

// TryBind binds device to port. It succeeds only if the slot is empty.
func (b *Bus) TryBind(port int, device Device) error {
	if port < 0 || port >= PortCount {
		return ErrPortRange
	}
	if b.devices[port] != nil {
		return ErrPortBound
	}
	b.devices[port] = device
	return nil
}

// MustBind binds device to port, panicking on failure. Intended for
// wiring the default hardware configuration at construction time, where
// a collision is a programming error, not a runtime condition.
func (b *Bus) MustBind(port int, device Device) {
	if err := b.TryBind(port, device); err != nil {
		panic(err)
	}
}

// Read loads the byte visible at port, delegating to the bound device.
// An unmapped port is fatal under Strict policy and reads as 0 under
// Permissive policy.
func (b *Bus) Read(port int) (byte, error) {
	if port < 0 || port >= PortCount {
		return 0, ErrPortRange
	}
	dev := b.devices[port]
	if dev == nil {
		if b.policy == Permissive {
			return 0, nil
		}
		return 0, ErrPortUnmapped
	}
	return dev.Load(), nil
}

// Write stores value to port, delegating to the bound device. An
// unmapped port is always fatal for Write, regardless of policy.
func (b *Bus) Write(port int, value byte) error {
	if port < 0 || port >= PortCount {
		return ErrPortRange
	}
	dev := b.devices[port]
	if dev == nil {
		return ErrPortUnmapped
	}
	return dev.Store(value)
}

// Bound reports whether a device is bound to port.
func (b *Bus) Bound(port int) bool {
	if port < 0 || port >= PortCount {
		return false
	}
	return b.devices[port] != nil
}
