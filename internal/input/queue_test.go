package input

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/hw"
)

func TestButtonQueueFIFOAndOverflow(t *testing.T) {
	q := NewButtonQueue(hw.NewController(), 2)

	if err := q.Press(2); err != nil {
		t.Fatalf("Press(2) failed: %v", err)
	}
	if err := q.Press(0); err != nil {
		t.Fatalf("Press(0) failed: %v", err)
	}
	if err := q.Press(3); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("third Press() = %v, expected ErrQueueFull", err)
	}
	for _, want := range []int{2, 0} {
		b, ok := q.Pop()
		if !ok || b != want {
			t.Fatalf("Pop() = %d, %v, expected %d", b, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should report no button")
	}

	// Capacity is available again once drained.
	if err := q.Press(1); err != nil {
		t.Errorf("Press() after drain failed: %v", err)
	}
	q.Clear()
	if _, ok := q.Pop(); ok {
		t.Error("Clear() left presses queued")
	}
}

func TestRxBufferWrapsAndDrops(t *testing.T) {
	rx := NewRxBuffer(hw.NewController(), 4)

	rx.Receive([]byte("abc"))
	for _, want := range []byte("ab") {
		b, ok := rx.Take()
		if !ok || b != want {
			t.Fatalf("Take() = %q, %v, expected %q", b, ok, want)
		}
	}

	// Ring now holds "c"; three more fill it, the fourth is dropped.
	rx.Receive([]byte("defg"))
	if rx.Dropped() != 1 {
		t.Errorf("Dropped() = %d, expected 1", rx.Dropped())
	}

	var got []byte
	for {
		b, ok := rx.Take()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if string(got) != "cdef" {
		t.Errorf("drained %q, expected %q", got, "cdef")
	}

	rx.Receive([]byte("z"))
	rx.Clear()
	if _, ok := rx.Take(); ok {
		t.Error("Clear() left bytes buffered")
	}
}

func TestDefaultSizes(t *testing.T) {
	irq := hw.NewController()
	q := NewButtonQueue(irq, 0)
	for i := 0; i < DefaultButtonDepth; i++ {
		if err := q.Press(i); err != nil {
			t.Fatalf("Press(%d) failed: %v", i, err)
		}
	}
	if err := q.Press(0); !errors.Is(err, ErrQueueFull) {
		t.Errorf("default depth should be %d", DefaultButtonDepth)
	}

	rx := NewRxBuffer(irq, 0)
	rx.Receive(make([]byte, DefaultRxSize+1))
	if rx.Dropped() != 1 {
		t.Errorf("default ring should hold %d bytes", DefaultRxSize)
	}
}
