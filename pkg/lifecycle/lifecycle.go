// Package lifecycle tracks the activity lifecycle state and validates the
// platform's transition contract. The platform guarantees transitions are
// delivered strictly ordered and non-reentrant, so observers are notified
// synchronously; the machine never queues across transitions.
package lifecycle

import (
	"errors"
	"fmt"
	"sync"
)

// State is the current platform lifecycle state. Exactly one Machine exists
// per activity instance, and only it mutates the state.
type State int

const (
	// StateInitial is the pre-Created zero state. It exists only so the
	// Create transition itself can be validated and never recurs.
	StateInitial State = iota
	// StateCreated means the activity exists but is not visible.
	StateCreated
	// StateStarted means the activity is visible but not foreground.
	StateStarted
	// StateResumed means the activity is foreground and interactive.
	StateResumed
	// StatePaused means the activity lost foreground but may still be visible.
	StatePaused
	// StateStopped means the activity is no longer visible.
	StateStopped
	// StateDestroyed is terminal.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateCreated:
		return "created"
	case StateStarted:
		return "started"
	case StateResumed:
		return "resumed"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Transition is a platform-originated lifecycle signal.
type Transition int

const (
	// TransitionCreate corresponds to the activity's create callback.
	TransitionCreate Transition = iota
	// TransitionStart corresponds to the start callback.
	TransitionStart
	// TransitionResume corresponds to the resume callback.
	TransitionResume
	// TransitionPause corresponds to the pause callback.
	TransitionPause
	// TransitionStop corresponds to the stop callback.
	TransitionStop
	// TransitionDestroy corresponds to the destroy callback and is terminal.
	TransitionDestroy
)

func (t Transition) String() string {
	switch t {
	case TransitionCreate:
		return "create"
	case TransitionStart:
		return "start"
	case TransitionResume:
		return "resume"
	case TransitionPause:
		return "pause"
	case TransitionStop:
		return "stop"
	case TransitionDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a transition violates the platform's
// documented state graph. The machine's state is unchanged.
var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// InvalidTransitionError reports the rejected transition and the state the
// machine remained in.
type InvalidTransitionError struct {
	From       State
	Transition Transition
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%v: %s from %s", ErrInvalidTransition, e.Transition, e.From)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// Observer is notified synchronously after a transition is applied.
type Observer func(old, new State, t Transition)

// transitions is the platform's documented state graph: the activity runs
// Create->Start->Resume, backs out Resume->Pause->Stop->Destroy, and may
// cycle Pause->Resume (re-foreground) or Stop->Start (restart).
var transitions = map[Transition]map[State]State{
	TransitionCreate:  {StateInitial: StateCreated},
	TransitionStart:   {StateCreated: StateStarted, StateStopped: StateStarted},
	TransitionResume:  {StateStarted: StateResumed, StatePaused: StateResumed},
	TransitionPause:   {StateResumed: StatePaused},
	TransitionStop:    {StatePaused: StateStopped},
	// Destroy normally follows Stop, but the platform finishes a
	// never-started activity straight from Created.
	TransitionDestroy: {StateStopped: StateDestroyed, StateCreated: StateDestroyed},
}

// Machine applies validated lifecycle transitions and fans them out to
// observers. The state is read from the frame loop and written from queue
// processing; the mutex keeps Current/Foreground reads consistent with the
// most recent applied transition.
type Machine struct {
	mu        sync.Mutex
	state     State
	observers []Observer
}

// NewMachine creates a machine in the pre-Created state.
func NewMachine() *Machine {
	return &Machine{state: StateInitial}
}

// AddObserver registers an observer for applied transitions. Observers are
// invoked synchronously in registration order, outside the state lock.
func (m *Machine) AddObserver(obs Observer) {
	m.mu.Lock()
	m.observers = append(m.observers, obs)
	m.mu.Unlock()
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Foreground reports whether a live surface is permitted: the activity is
// between Start and Stop (inclusive of Paused, where the surface survives).
func (m *Machine) Foreground() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return foreground(m.state)
}

func foreground(s State) bool {
	return s == StateStarted || s == StateResumed || s == StatePaused
}

// Apply validates and applies one transition. On violation it returns an
// *InvalidTransitionError and the machine remains at its last valid state.
func (m *Machine) Apply(t Transition) error {
	m.mu.Lock()
	next, ok := transitions[t][m.state]
	if !ok {
		from := m.state
		m.mu.Unlock()
		return &InvalidTransitionError{From: from, Transition: t}
	}
	old := m.state
	m.state = next
	observers := make([]Observer, len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	for _, obs := range observers {
		obs(old, next, t)
	}
	return nil
}
