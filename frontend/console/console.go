// Package console provides a raw-terminal-backed key poller for the
// execution engine's keyboard port, for hosts without an SDL display.
package console

import (
	"fmt"
	"os"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// Keyboard reads raw stdin in a background goroutine and reports every
// byte read since the previous PressedKeys call as pressed.
// It satisfies device.KeyPoller.
type Keyboard struct {
	fd           int
	oldTermState *term.State
	nonblockSet  bool

	mu      sync.Mutex
	pending []byte

	stopCh chan struct{}
	done   chan struct{}
	stop   sync.Once
}

// NewKeyboard puts stdin into raw, non-blocking mode and starts polling
// it. Call Close to restore the terminal.
func NewKeyboard() (*Keyboard, error) {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("console: raw mode: %w", err)
	}

	if err := syscall.SetNonblock(fd, true); err != nil {
		_ = term.Restore(fd, oldState)
		return nil, fmt.Errorf("console: nonblocking stdin: %w", err)
	}

	k := &Keyboard{
		fd:           fd,
		oldTermState: oldState,
		nonblockSet:  true,
		stopCh:       make(chan struct{}),
		done:         make(chan struct{}),
	}

	go k.readLoop()
	return k, nil
}

func (k *Keyboard) readLoop() {
	defer close(k.done)
	buf := make([]byte, 1)
	for {
		select {
		case <-k.stopCh:
			return
		default:
		}

		n, err := syscall.Read(k.fd, buf)
		if n > 0 {
			k.mu.Lock()
			k.pending = append(k.pending, buf[0])
			k.mu.Unlock()
		}
		if err != nil && err != syscall.EAGAIN && err != syscall.EWOULDBLOCK {
			return
		}
	}
}

// PressedKeys implements device.KeyPoller, draining bytes read from
// stdin since the previous call.
func (k *Keyboard) PressedKeys() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	keys := k.pending
	k.pending = nil
	return keys
}

// Close stops the read goroutine and restores the terminal.
func (k *Keyboard) Close() error {
	k.stop.Do(func() { close(k.stopCh) })
	<-k.done
	if k.nonblockSet {
		_ = syscall.SetNonblock(k.fd, false)
	}
	return term.Restore(k.fd, k.oldTermState)
}
