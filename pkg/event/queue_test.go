package event

import (
	"testing"
	"time"

	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/lifecycle"
)

func drainEvents(q *Queue) []Event {
	entries := q.Drain()
	events := make([]Event, len(entries))
	for i, e := range entries {
		events[i] = e.Event
		e.Ack()
	}
	return events
}

func TestQueue_PreservesArrivalOrder(t *testing.T) {
	q := NewQueue()
	q.Push(LifecycleEvent{Transition: lifecycle.TransitionCreate})
	q.Push(InputEvent{Raw: input.RawText{Text: "a"}})
	q.Push(InputEvent{Raw: input.RawText{Text: "b"}})
	q.Push(LowMemoryEvent{})

	events := drainEvents(q)
	if len(events) != 4 {
		t.Fatalf("drained %d events, want 4", len(events))
	}
	if _, ok := events[0].(LifecycleEvent); !ok {
		t.Errorf("events[0] = %T, want LifecycleEvent", events[0])
	}
	if ev, ok := events[1].(InputEvent); !ok || ev.Raw.(input.RawText).Text != "a" {
		t.Errorf("events[1] = %#v, want text a", events[1])
	}
	if ev, ok := events[2].(InputEvent); !ok || ev.Raw.(input.RawText).Text != "b" {
		t.Errorf("events[2] = %#v, want text b", events[2])
	}
	if _, ok := events[3].(LowMemoryEvent); !ok {
		t.Errorf("events[3] = %T, want LowMemoryEvent", events[3])
	}
}

func TestQueue_PushSyncBlocksUntilAck(t *testing.T) {
	q := NewQueue()

	returned := make(chan struct{})
	go func() {
		q.PushSync(SurfaceDestroyedEvent{})
		close(returned)
	}()

	// Wait for the event to land.
	deadline := time.After(2 * time.Second)
	for q.Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("event never enqueued")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	select {
	case <-returned:
		t.Fatal("PushSync returned before ack")
	case <-time.After(20 * time.Millisecond):
	}

	entries := q.Drain()
	if len(entries) != 1 {
		t.Fatalf("drained %d entries, want 1", len(entries))
	}
	entries[0].Ack()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("PushSync did not return after ack")
	}
}

func TestQueue_CloseDropsNewPushes(t *testing.T) {
	q := NewQueue()
	q.Push(LowMemoryEvent{})
	q.Close()

	q.Push(LowMemoryEvent{})

	// PushSync after close must return immediately instead of deadlocking.
	done := make(chan struct{})
	go func() {
		q.PushSync(SurfaceDestroyedEvent{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("PushSync blocked on a closed queue")
	}

	// The entry queued before close is still drainable.
	if got := len(drainEvents(q)); got != 1 {
		t.Errorf("drained %d events after close, want 1", got)
	}
}

func TestQueue_WakeSignaledOnPush(t *testing.T) {
	q := NewQueue()
	q.Push(LowMemoryEvent{})

	select {
	case <-q.Wake():
	case <-time.After(2 * time.Second):
		t.Fatal("wake channel not signaled after push")
	}
}

func TestQueue_WakeCoalesces(t *testing.T) {
	q := NewQueue()
	q.Push(LowMemoryEvent{})
	q.Push(LowMemoryEvent{})
	q.Push(LowMemoryEvent{})

	<-q.Wake()
	if got := len(drainEvents(q)); got != 3 {
		t.Errorf("one wake covered %d events, want 3", got)
	}
	select {
	case <-q.Wake():
		t.Error("spurious second wake for coalesced pushes")
	default:
	}
}

func TestQueue_SignalWakesWithoutEvent(t *testing.T) {
	q := NewQueue()
	q.Signal()

	select {
	case <-q.Wake():
	case <-time.After(2 * time.Second):
		t.Fatal("Signal did not wake the consumer")
	}
	if q.Len() != 0 {
		t.Errorf("Signal enqueued an event: len=%d", q.Len())
	}
}

func TestQueue_AckIsNoOpForAsyncPush(t *testing.T) {
	q := NewQueue()
	q.Push(LowMemoryEvent{})
	entries := q.Drain()
	// Must not panic.
	entries[0].Ack()
}
