// Package diag collects frame-loop diagnostics: a ring buffer of frame
// durations and an optional HTTP debug server for inspecting them from a
// development host.
package diag

import (
	"sync"
	"time"
)

// FrameTimingBuffer is a ring buffer of frame durations.
type FrameTimingBuffer struct {
	mu       sync.RWMutex
	samples  []time.Duration
	index    int
	capacity int
	count    int
	dropped  uint64
	rendered uint64
}

// NewFrameTimingBuffer creates a buffer with the given capacity.
// A non-positive capacity defaults to 120.
func NewFrameTimingBuffer(capacity int) *FrameTimingBuffer {
	if capacity <= 0 {
		capacity = 120
	}
	return &FrameTimingBuffer{
		samples:  make([]time.Duration, capacity),
		capacity: capacity,
	}
}

// Add records the duration of one rendered frame.
func (b *FrameTimingBuffer) Add(duration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = duration
	b.index = (b.index + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
	b.rendered++
}

// AddDropped records a frame that was silently dropped because the surface
// was invalidated between the ready check and the present.
func (b *FrameTimingBuffer) AddDropped() {
	b.mu.Lock()
	b.dropped++
	b.mu.Unlock()
}

// Samples returns a copy of the frame samples in chronological order.
func (b *FrameTimingBuffer) Samples() []time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	result := make([]time.Duration, b.count)
	if b.count < b.capacity {
		copy(result, b.samples[:b.count])
	} else {
		// Buffer full - oldest sample is at b.index
		copy(result, b.samples[b.index:])
		copy(result[b.capacity-b.index:], b.samples[:b.index])
	}
	return result
}

// Count returns the number of samples currently in the buffer.
func (b *FrameTimingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}

// Stats summarizes the buffer for the debug server.
type Stats struct {
	Rendered uint64  `json:"rendered"`
	Dropped  uint64  `json:"dropped"`
	AvgMs    float64 `json:"avgMs"`
	MaxMs    float64 `json:"maxMs"`
}

// Stats computes summary statistics over the current window.
func (b *FrameTimingBuffer) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Stats{Rendered: b.rendered, Dropped: b.dropped}
	if b.count == 0 {
		return s
	}
	var total, max time.Duration
	for i := 0; i < b.count; i++ {
		d := b.samples[i]
		total += d
		if d > max {
			max = d
		}
	}
	s.AvgMs = float64(total.Microseconds()) / float64(b.count) / 1000
	s.MaxMs = float64(max.Microseconds()) / 1000
	return s
}
