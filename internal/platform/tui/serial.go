package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pkg/term"
)

// DefaultBaud is the serial link speed.
const DefaultBaud = 19200

// serialPoll bounds how long a read blocks before the pump looks at its
// context again.
const serialPoll = 100 * time.Millisecond

// Receiver takes bytes as the UART receive interrupt would.
type Receiver interface {
	Receive(p []byte)
}

// SerialLink is a byte stream standing in for the board's UART.
type SerialLink struct {
	name string
	port io.ReadWriteCloser
	// idleEOF is set when a read timeout surfaces as io.EOF.
	idleEOF bool
}

// OpenSerial opens a serial device in raw mode at baud.
func OpenSerial(device string, baud int) (*SerialLink, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", device, err)
	}
	if err := t.SetReadTimeout(serialPoll); err != nil {
		t.Close()
		return nil, fmt.Errorf("serial: read timeout %s: %w", device, err)
	}
	return &SerialLink{name: device, port: t, idleEOF: true}, nil
}

// NewSerialLink wraps an already open stream.
func NewSerialLink(name string, port io.ReadWriteCloser) *SerialLink {
	return &SerialLink{name: name, port: port}
}

// Name returns the device name.
func (l *SerialLink) Name() string {
	return l.name
}

// Pump copies received bytes into rx until ctx is cancelled or the stream
// ends. It returns nil on cancellation and at end of stream.
func (l *SerialLink) Pump(ctx context.Context, rx Receiver) error {
	buf := make([]byte, 64)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := l.port.Read(buf)
		if n > 0 {
			rx.Receive(buf[:n])
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if !l.idleEOF {
				return nil
			}
		default:
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("serial: read %s: %w", l.name, err)
		}
	}
}

// Write sends text to the terminal on the other end.
func (l *SerialLink) Write(p []byte) (int, error) {
	return l.port.Write(p)
}

// Close releases the device.
func (l *SerialLink) Close() error {
	return l.port.Close()
}
