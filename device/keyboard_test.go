package device_test

import (
	"testing"

	"github.com/octo8vm/octo8/device"
	"github.com/stretchr/testify/require"
)

type fakePoller struct{ pressed []byte }

func (p *fakePoller) PressedKeys() []byte { return p.pressed }

func TestKeyboardDedupsAndDrains(t *testing.T) {
	require := require.New(t)

	poller := &fakePoller{pressed: []byte{'a', 'b'}}
	kb := device.NewKeyboard(poller)

	require.Equal(byte('a'), kb.Load())
	require.Equal(byte('b'), kb.Load())
	require.Equal(byte(0), kb.Load())
}

func TestKeyboardReQueuesAfterRelease(t *testing.T) {
	require := require.New(t)

	poller := &fakePoller{pressed: []byte{'a'}}
	kb := device.NewKeyboard(poller)
	require.Equal(byte('a'), kb.Load())

	poller.pressed = nil
	require.Equal(byte(0), kb.Load())

	poller.pressed = []byte{'a'}
	require.Equal(byte('a'), kb.Load())
}

func TestKeyboardStoreZeroClears(t *testing.T) {
	require := require.New(t)

	poller := &fakePoller{pressed: []byte{'a', 'b'}}
	kb := device.NewKeyboard(poller)
	require.NoError(kb.Store(0))
	// Nothing was polled before the clear, so the first load after it
	// polls and queues the held keys.
	require.Equal(byte('a'), kb.Load())

	require.NoError(kb.Store(9))
	require.Equal(byte('b'), kb.Load())
}
