package device

import "time"

// timerState is the shared millisecond-elapsed counter behind a
// timer's four read-only ports.
type timerState struct {
	start time.Time
}

func (s *timerState) elapsedMillis() uint32 {
	return uint32(time.Since(s.start).Milliseconds())
}

// TimerByte is the i-th little-endian byte of the millisecond counter
// elapsed since the timer's construction. Stores are ignored.
type TimerByte struct {
	state *timerState
	index uint
}

func (t *TimerByte) Load() byte {
	return byte(t.state.elapsedMillis() >> (8 * t.index))
}

func (t *TimerByte) Store(byte) error { return nil }

// NewTimer returns the four port adapters for a timer, ordered
// little-endian, sharing one backing start time. Bind them to four
// consecutive ports starting at the base port.
func NewTimer() [4]*TimerByte {
	state := &timerState{start: time.Now()}
	var ports [4]*TimerByte
	for i := range ports {
		ports[i] = &TimerByte{state: state, index: uint(i)}
	}
	return ports
}
