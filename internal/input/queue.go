package input

import (
	"errors"

	"github.com/vovakirdan/tui-frogger/internal/hw"
)

// ErrQueueFull is returned when a press arrives while the queue is full.
var ErrQueueFull = errors.New("input: button queue full")

// Default buffer sizes.
const (
	DefaultButtonDepth = 2
	DefaultRxSize      = 64
)

// ButtonQueue is a short FIFO of button presses. Presses are queued from
// interrupt context; the foreground pops them with interrupts disabled.
type ButtonQueue struct {
	irq   *hw.Controller
	items []int
	depth int
}

// NewButtonQueue creates a queue holding at most depth presses.
func NewButtonQueue(irq *hw.Controller, depth int) *ButtonQueue {
	if depth <= 0 {
		depth = DefaultButtonDepth
	}
	return &ButtonQueue{
		irq:   irq,
		items: make([]int, 0, depth),
		depth: depth,
	}
}

// Press raises the button interrupt for button. Presses that arrive while the
// queue is full are rejected.
func (q *ButtonQueue) Press(button int) error {
	var err error
	q.irq.Fire(func() {
		err = q.push(button)
	})
	return err
}

// push runs in interrupt context.
func (q *ButtonQueue) push(button int) error {
	if len(q.items) >= q.depth {
		return ErrQueueFull
	}
	q.items = append(q.items, button)
	return nil
}

// Pop implements ButtonSource.
func (q *ButtonQueue) Pop() (int, bool) {
	s := q.irq.Disable()
	defer q.irq.Restore(s)

	if len(q.items) == 0 {
		return 0, false
	}
	b := q.items[0]
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	return b, true
}

// Clear discards queued presses.
func (q *ButtonQueue) Clear() {
	q.irq.Critical(func() {
		q.items = q.items[:0]
	})
}

// RxBuffer is the UART receive ring. Bytes are stored from the receive
// interrupt; bytes arriving while the ring is full are dropped.
type RxBuffer struct {
	irq     *hw.Controller
	buf     []byte
	head    int
	count   int
	dropped uint64
}

// NewRxBuffer creates a receive ring of size bytes.
func NewRxBuffer(irq *hw.Controller, size int) *RxBuffer {
	if size <= 0 {
		size = DefaultRxSize
	}
	return &RxBuffer{
		irq: irq,
		buf: make([]byte, size),
	}
}

// Receive raises the receive interrupt for each byte of p.
func (r *RxBuffer) Receive(p []byte) {
	for _, b := range p {
		r.irq.Fire(func() {
			r.store(b)
		})
	}
}

// store runs in interrupt context.
func (r *RxBuffer) store(b byte) {
	if r.count == len(r.buf) {
		r.dropped++
		return
	}
	r.buf[(r.head+r.count)%len(r.buf)] = b
	r.count++
}

// Take implements ByteSource.
func (r *RxBuffer) Take() (byte, bool) {
	s := r.irq.Disable()
	defer r.irq.Restore(s)

	if r.count == 0 {
		return 0, false
	}
	b := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return b, true
}

// Clear discards buffered input.
func (r *RxBuffer) Clear() {
	r.irq.Critical(func() {
		r.head = 0
		r.count = 0
	})
}

// Dropped returns how many bytes were lost to a full ring.
func (r *RxBuffer) Dropped() uint64 {
	s := r.irq.Disable()
	defer r.irq.Restore(s)
	return r.dropped
}
