package input

import "time"

// RawEvent is an untranslated platform input event as delivered by the
// native callback layer. Coordinates are physical pixels; key characters
// are pre-resolved by the platform's key character map.
type RawEvent interface {
	isRawEvent()
}

// MetaState is the platform's packed modifier bitmask.
type MetaState uint32

// Meta state masks, matching the platform's KeyEvent constants.
const (
	MetaShiftOn MetaState = 0x1
	MetaAltOn   MetaState = 0x2
	MetaCtrlOn  MetaState = 0x1000
	MetaMetaOn  MetaState = 0x10000
)

// Modifiers expands the bitmask into a per-event snapshot.
func (m MetaState) Modifiers() Modifiers {
	return Modifiers{
		Alt:     m&MetaAltOn != 0,
		Ctrl:    m&MetaCtrlOn != 0,
		Shift:   m&MetaShiftOn != 0,
		Command: m&MetaMetaOn != 0,
	}
}

// RawPointerAction identifies the motion action of a raw pointer event.
type RawPointerAction int

const (
	// RawPointerActionDown is a primary or secondary pointer touching down.
	RawPointerActionDown RawPointerAction = iota
	// RawPointerActionMove is a pointer moving while down.
	RawPointerActionMove
	// RawPointerActionUp is a pointer lifting.
	RawPointerActionUp
	// RawPointerActionCancel aborts the gesture.
	RawPointerActionCancel
	// RawPointerActionScroll is a scroll-wheel motion.
	RawPointerActionScroll
)

// RawPointer is one pointer sample from a platform motion event.
type RawPointer struct {
	// ID is the platform pointer identifier, stable for the gesture.
	ID     int64
	Action RawPointerAction
	// X, Y are physical pixel coordinates.
	X float64
	Y float64
	// Pressure is the touch pressure, if reported.
	Pressure float64
	// HScroll, VScroll are scroll axis values for scroll actions.
	HScroll float64
	VScroll float64
	Meta    MetaState
	Time    time.Duration
}

func (RawPointer) isRawEvent() {}

// RawKey is a platform key event. Unicode carries the character the
// platform's key character map resolved for the keycode+meta combination
// (zero when the key has no character), and Combining marks dead keys
// whose accent combines with the next character.
type RawKey struct {
	Code      Keycode
	Pressed   bool
	Repeat    bool
	Unicode   rune
	Combining bool
	Meta      MetaState
	Time      time.Duration
}

func (RawKey) isRawEvent() {}

// RawText is a finalized text run delivered outside key events.
type RawText struct {
	Text string
	Time time.Duration
}

func (RawText) isRawEvent() {}

// RawComposition is an IME composition update. The platform may deliver
// these out of band from key events.
type RawComposition struct {
	// Text is the pre-edit text, or the finalized run when Commit is set.
	Text string
	// Commit finalizes the composition.
	Commit bool
	// Cancel discards the composition.
	Cancel bool
	Time   time.Duration
}

func (RawComposition) isRawEvent() {}
