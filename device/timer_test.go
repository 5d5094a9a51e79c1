package device_test

import (
	"testing"
	"time"

	"github.com/octo8vm/octo8/device"
	"github.com/stretchr/testify/assert"
)

func TestTimerElapsedIncreases(t *testing.T) {
	assert := assert.New(t)

	ports := device.NewTimer()
	assign := func() uint32 {
		var v uint32
		for i, p := range ports {
			v |= uint32(p.Load()) << (8 * uint(i))
		}
		return v
	}

	first := assign()
	time.Sleep(5 * time.Millisecond)
	second := assign()

	assert.GreaterOrEqual(second, first)
	for _, p := range ports {
		assert.NoError(p.Store(0xff))
	}
}
