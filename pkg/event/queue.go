package event

import "sync"

// Entry is one queued event plus its completion signal.
type Entry struct {
	Event Event
	done  chan struct{}
}

// Ack marks the entry as processed, releasing a blocked PushSync caller.
// Safe to call on entries pushed asynchronously (no-op).
func (e Entry) Ack() {
	if e.done != nil {
		close(e.done)
	}
}

// Queue is the single-producer-side, single-consumer FIFO between the
// platform callback thread and the render thread. Push never blocks;
// PushSync blocks the callback thread until the render thread has fully
// processed the event, which is how synchronous platform contracts
// (surface teardown, save-state, destroy) are honored.
type Queue struct {
	mu      sync.Mutex
	entries []Entry
	closed  bool

	// wake has capacity one; it coalesces producer signals the way a
	// condition variable would, and lets the consumer select on it
	// alongside its repaint deadline timer.
	wake chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{}, 1)}
}

// Push enqueues an event without waiting for it to be processed.
func (q *Queue) Push(ev Event) {
	q.push(Entry{Event: ev})
}

// PushSync enqueues an event and blocks until the consumer acks it.
// If the queue is already closed the event is dropped and PushSync
// returns immediately; after destroy there is nothing left to wait for.
func (q *Queue) PushSync(ev Event) {
	done := make(chan struct{})
	if !q.push(Entry{Event: ev, done: done}) {
		return
	}
	<-done
}

// push returns false when the queue is closed.
func (q *Queue) push(e Entry) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.entries = append(q.entries, e)
	q.mu.Unlock()
	q.signal()
	return true
}

func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Signal wakes the consumer without enqueueing an event. Used for repaint
// requests that carry no payload.
func (q *Queue) Signal() {
	q.signal()
}

// Wake returns the channel signaled when events arrive. Capacity one:
// a receive may cover multiple pushes, so consumers drain after waking.
func (q *Queue) Wake() <-chan struct{} {
	return q.wake
}

// Drain removes and returns all queued entries in arrival order.
// The consumer must Ack every returned entry after processing it.
func (q *Queue) Drain() []Entry {
	q.mu.Lock()
	entries := q.entries
	q.entries = nil
	q.mu.Unlock()
	return entries
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Close rejects further pushes. Entries already queued remain drainable;
// the consumer acks them during its final drain. Called once when the
// activity is destroyed.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.signal()
}
