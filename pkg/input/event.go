// Package input translates raw platform touch, key, and IME events into the
// toolkit-facing event vocabulary. Translation preserves pointer identity
// across a gesture, arrival order, monotonic timestamps, and a modifier
// snapshot per event, and converts physical pixel coordinates to logical
// coordinates using the current density scale factor.
package input

import (
	"time"

	"github.com/go-ember/ember/pkg/geom"
)

// Event is a translated toolkit input event.
type Event interface {
	isInputEvent()
	// When returns the event's monotonic timestamp.
	When() time.Duration
}

// Modifiers is the modifier-key state snapshot taken at an event.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	Command bool
}

// PointerPhase identifies the stage of a pointer gesture.
type PointerPhase int

const (
	// PointerDown begins a gesture.
	PointerDown PointerPhase = iota
	// PointerMove continues a gesture.
	PointerMove
	// PointerUp ends a gesture.
	PointerUp
	// PointerCancel aborts a gesture.
	PointerCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a translated touch event. ID is stable across the
// down/move/up sequence of one gesture.
type PointerEvent struct {
	ID        int64
	Phase     PointerPhase
	Position  geom.Point
	Pressure  float64
	Modifiers Modifiers
	Time      time.Duration
}

func (PointerEvent) isInputEvent()         {}
func (e PointerEvent) When() time.Duration { return e.Time }

// ScrollEvent is a translated scroll-wheel event in logical units.
type ScrollEvent struct {
	Delta     geom.Point
	Modifiers Modifiers
	Time      time.Duration
}

func (ScrollEvent) isInputEvent()         {}
func (e ScrollEvent) When() time.Duration { return e.Time }

// KeyEvent is a translated physical key press or release.
type KeyEvent struct {
	Key       Key
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
	Time      time.Duration
}

func (KeyEvent) isInputEvent()         {}
func (e KeyEvent) When() time.Duration { return e.Time }

// TextEvent carries finalized text produced by key input (including
// dead-key combinations resolved by the translator).
type TextEvent struct {
	Text string
	Time time.Duration
}

func (TextEvent) isInputEvent()         {}
func (e TextEvent) When() time.Duration { return e.Time }

// Command identifies an editing command key.
type Command int

const (
	// CommandCopy copies the selection.
	CommandCopy Command = iota
	// CommandCut cuts the selection.
	CommandCut
	// CommandPaste pastes the clipboard.
	CommandPaste
)

// CommandEvent is a translated editing command (copy/cut/paste keys).
type CommandEvent struct {
	Command Command
	Time    time.Duration
}

func (CommandEvent) isInputEvent()         {}
func (e CommandEvent) When() time.Duration { return e.Time }

// CompositionPhase distinguishes in-progress IME pre-edit text from its
// final outcome.
type CompositionPhase int

const (
	// CompositionUpdate carries the current pre-edit span.
	CompositionUpdate CompositionPhase = iota
	// CompositionCommit carries finalized text.
	CompositionCommit
	// CompositionCancel discards the pre-edit span.
	CompositionCancel
)

// CompositionEvent relays IME composition state. Update events carry the
// pre-edit text; Commit carries the finalized run; Cancel carries nothing.
type CompositionEvent struct {
	Phase CompositionPhase
	Text  string
	Time  time.Duration
}

func (CompositionEvent) isInputEvent()         {}
func (e CompositionEvent) When() time.Duration { return e.Time }
