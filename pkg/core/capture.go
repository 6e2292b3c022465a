package core

import (
	"sync"
	"time"
)

// DefaultCaptureBuffer is the capture channel capacity when none is configured.
const DefaultCaptureBuffer = 16

// CaptureBus delivers externally captured text to a single consumer.
// Publishing never blocks the producer (typically a hotkey callback).
type CaptureBus struct {
	mu     sync.Mutex
	ch     chan CaptureEvent
	closed bool
	clock  Clock
}

// NewCaptureBus creates a bus with the given buffer size. Zero means default.
func NewCaptureBus(buffer int, clock Clock) *CaptureBus {
	if buffer <= 0 {
		buffer = DefaultCaptureBuffer
	}
	if clock == nil {
		clock = time.Now
	}
	return &CaptureBus{
		ch:    make(chan CaptureEvent, buffer),
		clock: clock,
	}
}

// Publish enqueues text exactly once. It returns false when text is empty,
// the bus is closed, or the buffer is full.
func (b *CaptureBus) Publish(text string) bool {
	if text == "" {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}

	select {
	case b.ch <- CaptureEvent{Text: text, At: b.clock()}:
		return true
	default:
		return false
	}
}

// Events returns the receive side of the bus. It is closed by Close.
func (b *CaptureBus) Events() <-chan CaptureEvent {
	return b.ch
}

// Close stops the bus. Buffered events remain readable.
func (b *CaptureBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}

// Len returns the number of buffered, unread events.
func (b *CaptureBus) Len() int {
	return len(b.ch)
}
