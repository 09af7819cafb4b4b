package input

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-ember/ember/pkg/geom"
)

func TestTranslator_PointerScaling(t *testing.T) {
	tr := NewTranslator(2.0, false)
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionDown, X: 100, Y: 100, Pressure: 1})

	events := tr.Snapshot()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	p := events[0].(PointerEvent)
	if p.Position != (geom.Point{X: 50, Y: 50}) {
		t.Errorf("position = %+v, want {50 50}", p.Position)
	}

	// A density change must affect subsequent events immediately.
	tr.SetScale(3.0)
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 150, Y: 150})
	p = tr.Snapshot()[0].(PointerEvent)
	if p.Position != (geom.Point{X: 50, Y: 50}) {
		t.Errorf("position after rescale = %+v, want {50 50}", p.Position)
	}
}

func TestTranslator_GesturePreservesIdentityAndOrder(t *testing.T) {
	tr := NewTranslator(1, false)
	raw := []RawPointer{
		{ID: 7, Action: RawPointerActionDown, X: 1, Y: 1, Time: 10 * time.Millisecond},
		{ID: 7, Action: RawPointerActionMove, X: 2, Y: 2, Time: 20 * time.Millisecond},
		{ID: 7, Action: RawPointerActionMove, X: 3, Y: 3, Time: 30 * time.Millisecond},
		{ID: 7, Action: RawPointerActionUp, X: 3, Y: 3, Time: 40 * time.Millisecond},
	}
	for _, r := range raw {
		tr.HandleRaw(r)
	}

	want := []Event{
		PointerEvent{ID: 7, Phase: PointerDown, Position: geom.Point{X: 1, Y: 1}, Time: 10 * time.Millisecond},
		PointerEvent{ID: 7, Phase: PointerMove, Position: geom.Point{X: 2, Y: 2}, Time: 20 * time.Millisecond},
		PointerEvent{ID: 7, Phase: PointerMove, Position: geom.Point{X: 3, Y: 3}, Time: 30 * time.Millisecond},
		PointerEvent{ID: 7, Phase: PointerUp, Position: geom.Point{X: 3, Y: 3}, Time: 40 * time.Millisecond},
	}
	if diff := cmp.Diff(want, tr.Snapshot()); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}

	var last time.Duration
	for _, r := range raw {
		if r.Time < last {
			t.Fatal("test data not monotonic")
		}
		last = r.Time
	}
}

func TestTranslator_CoalescesAdjacentMoves(t *testing.T) {
	tr := NewTranslator(1, true)
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionDown, X: 0, Y: 0})
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 1, Y: 1})
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 2, Y: 2})
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 3, Y: 3})
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionUp, X: 3, Y: 3})

	events := tr.Snapshot()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3 (down, merged move, up)", len(events))
	}
	move := events[1].(PointerEvent)
	if move.Phase != PointerMove || move.Position != (geom.Point{X: 3, Y: 3}) {
		t.Errorf("merged move = %+v, want latest sample {3 3}", move)
	}
}

func TestTranslator_CoalescingNeverCrossesPointers(t *testing.T) {
	tr := NewTranslator(1, true)
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 1, Y: 1})
	tr.HandleRaw(RawPointer{ID: 2, Action: RawPointerActionMove, X: 9, Y: 9})
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 2, Y: 2})

	events := tr.Snapshot()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3: interleaved pointers must not merge", len(events))
	}
}

func TestTranslator_CoalescingDisabled(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 1, Y: 1})
	tr.HandleRaw(RawPointer{ID: 1, Action: RawPointerActionMove, X: 2, Y: 2})

	if got := len(tr.Snapshot()); got != 2 {
		t.Errorf("got %d events with coalescing off, want 2", got)
	}
}

func TestTranslator_Scroll(t *testing.T) {
	tr := NewTranslator(2, false)
	tr.HandleRaw(RawPointer{Action: RawPointerActionScroll, HScroll: 10, VScroll: -20})

	events := tr.Snapshot()
	s := events[0].(ScrollEvent)
	if s.Delta != (geom.Point{X: 5, Y: -10}) {
		t.Errorf("scroll delta = %+v, want {5 -10}", s.Delta)
	}
}

func TestTranslator_KeyEvents(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawKey{Code: KeycodeEscape, Pressed: true, Meta: MetaShiftOn})
	tr.HandleRaw(RawKey{Code: KeycodeEscape, Pressed: false, Meta: MetaShiftOn})

	want := []Event{
		KeyEvent{Key: KeyEscape, Pressed: true, Modifiers: Modifiers{Shift: true}},
		KeyEvent{Key: KeyEscape, Pressed: false, Modifiers: Modifiers{Shift: true}},
	}
	if diff := cmp.Diff(want, tr.Snapshot()); diff != "" {
		t.Errorf("key events (-want +got):\n%s", diff)
	}
}

func TestTranslator_UnknownKeycodeDropped(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawKey{Code: Keycode(9999), Pressed: true})
	if tr.HasPending() {
		t.Error("unknown keycode produced an event")
	}
}

func TestTranslator_CharacterKeysProduceText(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawKey{Code: KeycodeA, Pressed: true, Unicode: 'a'})
	tr.HandleRaw(RawKey{Code: KeycodeA, Pressed: false, Unicode: 'a'})

	events := tr.Snapshot()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (release produces no text)", len(events))
	}
	if ev := events[0].(TextEvent); ev.Text != "a" {
		t.Errorf("text = %q, want a", ev.Text)
	}
}

func TestTranslator_DeadKeyComposition(t *testing.T) {
	tr := NewTranslator(1, false)
	// Dead acute accent (U+0301), then the base character.
	tr.HandleRaw(RawKey{Pressed: true, Unicode: 0x0301, Combining: true})
	tr.HandleRaw(RawKey{Pressed: true, Unicode: 'e'})

	events := tr.Snapshot()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if ev := events[0].(TextEvent); ev.Text != "é" {
		t.Errorf("composed text = %q, want é", ev.Text)
	}

	// The accent is consumed; the next character is plain.
	tr.HandleRaw(RawKey{Pressed: true, Unicode: 'e'})
	if ev := tr.Snapshot()[0].(TextEvent); ev.Text != "e" {
		t.Errorf("text after composition = %q, want e", ev.Text)
	}
}

func TestTranslator_EditingCommands(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawKey{Code: KeycodeCopy, Pressed: true})
	tr.HandleRaw(RawKey{Code: KeycodeCut, Pressed: true})
	tr.HandleRaw(RawKey{Code: KeycodePaste, Pressed: true})

	want := []Event{
		CommandEvent{Command: CommandCopy},
		CommandEvent{Command: CommandCut},
		CommandEvent{Command: CommandPaste},
	}
	if diff := cmp.Diff(want, tr.Snapshot()); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}
}

func TestTranslator_TextRun(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawText{Text: "hello"})
	if ev := tr.Snapshot()[0].(TextEvent); ev.Text != "hello" {
		t.Errorf("text = %q, want hello", ev.Text)
	}
}

func TestTranslator_SnapshotClearsPending(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawText{Text: "x"})
	if !tr.HasPending() {
		t.Fatal("expected pending events")
	}
	tr.Snapshot()
	if tr.HasPending() {
		t.Error("pending events survived a snapshot")
	}
	if got := tr.Snapshot(); got != nil {
		t.Errorf("second snapshot = %v, want nil", got)
	}
}

func TestComposition_StateMachine(t *testing.T) {
	tr := NewTranslator(1, false)

	tr.HandleRaw(RawComposition{Text: "に"})
	if !tr.Composing() {
		t.Fatal("update did not enter composing state")
	}
	tr.HandleRaw(RawComposition{Text: "にほ"})
	tr.HandleRaw(RawComposition{Text: "日本", Commit: true})
	if tr.Composing() {
		t.Fatal("commit did not leave composing state")
	}

	want := []Event{
		CompositionEvent{Phase: CompositionUpdate, Text: "に"},
		CompositionEvent{Phase: CompositionUpdate, Text: "にほ"},
		CompositionEvent{Phase: CompositionCommit, Text: "日本"},
	}
	if diff := cmp.Diff(want, tr.Snapshot()); diff != "" {
		t.Errorf("composition events (-want +got):\n%s", diff)
	}
}

func TestComposition_CancelAndStrayCancel(t *testing.T) {
	tr := NewTranslator(1, false)

	// A cancel with no active composition is dropped.
	tr.HandleRaw(RawComposition{Cancel: true})
	if tr.HasPending() {
		t.Fatal("stray cancel produced an event")
	}

	tr.HandleRaw(RawComposition{Text: "a"})
	tr.HandleRaw(RawComposition{Cancel: true})
	events := tr.Snapshot()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if ev := events[1].(CompositionEvent); ev.Phase != CompositionCancel {
		t.Errorf("phase = %v, want cancel", ev.Phase)
	}
}

func TestComposition_CommitWithoutUpdate(t *testing.T) {
	tr := NewTranslator(1, false)
	tr.HandleRaw(RawComposition{Text: "whole run", Commit: true})

	events := tr.Snapshot()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0].(CompositionEvent)
	if ev.Phase != CompositionCommit || ev.Text != "whole run" {
		t.Errorf("event = %+v, want one-shot commit", ev)
	}
}

func TestMetaState_Modifiers(t *testing.T) {
	tests := []struct {
		meta MetaState
		want Modifiers
	}{
		{0, Modifiers{}},
		{MetaShiftOn, Modifiers{Shift: true}},
		{MetaAltOn | MetaCtrlOn, Modifiers{Alt: true, Ctrl: true}},
		{MetaMetaOn, Modifiers{Command: true}},
	}
	for _, tt := range tests {
		if got := tt.meta.Modifiers(); got != tt.want {
			t.Errorf("Modifiers(%#x) = %+v, want %+v", uint32(tt.meta), got, tt.want)
		}
	}
}
