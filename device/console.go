package device

import stdio "io"

// Console is a single write-only port device: every store emits the
// byte as an ASCII character to the configured sink. Loads always
// return 0.
//
// Write errors from the sink are swallowed rather than surfaced as
// fatal program errors: the core's fatal-error taxonomy covers bugs in
// the loaded program and device wiring, not failures of an external
// text sink the core does not own.
type Console struct {
	sink stdio.Writer
}

// NewConsole creates a console device that writes to sink.
func NewConsole(sink stdio.Writer) *Console {
	return &Console{sink: sink}
}

func (c *Console) Load() byte { return 0 }

func (c *Console) Store(v byte) error {
	_, _ = c.sink.Write([]byte{v})
	return nil
}
