package input

import (
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/go-ember/ember/pkg/geom"
)

// Translator converts raw platform events into toolkit events and
// accumulates them until the frame loop takes a snapshot.
//
// The translator is written to and read from the render thread only; the
// mutex exists because the frame loop queries HasPending from its wait
// predicate while a synchronous platform callback may be mid-drain.
type Translator struct {
	mu sync.Mutex

	// scale is the density scale factor dividing physical pixels into
	// logical coordinates. Re-derived on every surface change; never cached
	// beyond one frame.
	scale float64

	coalesceMoves bool
	pending       []Event

	// combiningAccent holds a dead-key accent waiting for its base character.
	combiningAccent rune

	comp composition
}

// NewTranslator creates a translator with the given density scale factor.
func NewTranslator(scale float64, coalesceMoves bool) *Translator {
	if scale <= 0 {
		scale = 1
	}
	return &Translator{scale: scale, coalesceMoves: coalesceMoves}
}

// SetScale updates the density scale factor. Called on surface-changed and
// configuration-changed events.
func (t *Translator) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	t.mu.Lock()
	t.scale = scale
	t.mu.Unlock()
}

// Scale returns the current density scale factor.
func (t *Translator) Scale() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scale
}

// HandleRaw translates one raw event and appends the results to the
// pending buffer in arrival order.
func (t *Translator) HandleRaw(raw RawEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev := raw.(type) {
	case RawPointer:
		t.handlePointerLocked(ev)
	case RawKey:
		t.handleKeyLocked(ev)
	case RawText:
		if ev.Text != "" {
			t.pending = append(t.pending, TextEvent{Text: ev.Text, Time: ev.Time})
		}
	case RawComposition:
		t.pending = append(t.pending, t.comp.apply(ev)...)
	}
}

// Composing reports whether an IME pre-edit span is in progress.
func (t *Translator) Composing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.comp.active()
}

// HasPending reports whether translated events are waiting for a frame.
func (t *Translator) HasPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending) > 0
}

// Snapshot returns the pending events in arrival order and clears the
// buffer. The returned slice is owned by the caller.
func (t *Translator) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	events := t.pending
	t.pending = nil
	return events
}

func (t *Translator) handlePointerLocked(ev RawPointer) {
	mods := ev.Meta.Modifiers()

	if ev.Action == RawPointerActionScroll {
		t.pending = append(t.pending, ScrollEvent{
			Delta:     geom.LogicalPoint(ev.HScroll, ev.VScroll, t.scale),
			Modifiers: mods,
			Time:      ev.Time,
		})
		return
	}

	out := PointerEvent{
		ID:        ev.ID,
		Phase:     pointerPhase(ev.Action),
		Position:  geom.LogicalPoint(ev.X, ev.Y, t.scale),
		Pressure:  ev.Pressure,
		Modifiers: mods,
		Time:      ev.Time,
	}

	// Adjacent same-pointer moves may be merged to the latest sample. This
	// never reorders events and never touches down/up/cancel.
	if t.coalesceMoves && out.Phase == PointerMove && len(t.pending) > 0 {
		if last, ok := t.pending[len(t.pending)-1].(PointerEvent); ok &&
			last.Phase == PointerMove && last.ID == out.ID {
			t.pending[len(t.pending)-1] = out
			return
		}
	}

	t.pending = append(t.pending, out)
}

func (t *Translator) handleKeyLocked(ev RawKey) {
	mods := ev.Meta.Modifiers()

	switch {
	case ev.Combining && ev.Unicode != 0:
		if ev.Pressed {
			t.combiningAccent = ev.Unicode
		}
		return

	case ev.Unicode != 0:
		if !ev.Pressed {
			return
		}
		text := string(ev.Unicode)
		if t.combiningAccent != 0 {
			// Compose the pending dead-key accent with this base character.
			text = norm.NFC.String(string(ev.Unicode) + string(t.combiningAccent))
			t.combiningAccent = 0
		}
		t.pending = append(t.pending, TextEvent{Text: text, Time: ev.Time})
		return
	}

	switch ev.Code {
	case KeycodeCopy:
		if ev.Pressed {
			t.pending = append(t.pending, CommandEvent{Command: CommandCopy, Time: ev.Time})
		}
	case KeycodeCut:
		if ev.Pressed {
			t.pending = append(t.pending, CommandEvent{Command: CommandCut, Time: ev.Time})
		}
	case KeycodePaste:
		if ev.Pressed {
			t.pending = append(t.pending, CommandEvent{Command: CommandPaste, Time: ev.Time})
		}
	default:
		key, ok := ToPhysicalKey(ev.Code)
		if !ok {
			return
		}
		t.pending = append(t.pending, KeyEvent{
			Key:       key,
			Pressed:   ev.Pressed,
			Repeat:    ev.Repeat,
			Modifiers: mods,
			Time:      ev.Time,
		})
	}
}

func pointerPhase(action RawPointerAction) PointerPhase {
	switch action {
	case RawPointerActionDown:
		return PointerDown
	case RawPointerActionMove:
		return PointerMove
	case RawPointerActionUp:
		return PointerUp
	default:
		return PointerCancel
	}
}
