package device

import (
	"math/rand"
	"time"
)

// RNG is a single-port device that loads a uniformly random byte on
// every read. Stores are ignored; the port has no writable state,
// mirroring the pack's own RNG hardware, which treats SET_SEED as the
// only mutating interrupt and leaves plain loads unseeded by the
// caller.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG device seeded from the current time.
func NewRNG() *RNG {
	return &RNG{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *RNG) Load() byte { return byte(d.r.Intn(256)) }

func (d *RNG) Store(byte) error { return nil }
