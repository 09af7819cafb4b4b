package lifecycle

import (
	"errors"
	"testing"
)

func TestMachine_ValidSequences(t *testing.T) {
	tests := []struct {
		name        string
		transitions []Transition
		want        State
	}{
		{
			name:        "cold start to foreground",
			transitions: []Transition{TransitionCreate, TransitionStart, TransitionResume},
			want:        StateResumed,
		},
		{
			name: "full teardown",
			transitions: []Transition{
				TransitionCreate, TransitionStart, TransitionResume,
				TransitionPause, TransitionStop, TransitionDestroy,
			},
			want: StateDestroyed,
		},
		{
			name: "pause resume cycle",
			transitions: []Transition{
				TransitionCreate, TransitionStart, TransitionResume,
				TransitionPause, TransitionResume,
			},
			want: StateResumed,
		},
		{
			name: "stop restart cycle",
			transitions: []Transition{
				TransitionCreate, TransitionStart, TransitionResume,
				TransitionPause, TransitionStop, TransitionStart,
			},
			want: StateStarted,
		},
		{
			name:        "finish before ever starting",
			transitions: []Transition{TransitionCreate, TransitionDestroy},
			want:        StateDestroyed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for i, tr := range tt.transitions {
				if err := m.Apply(tr); err != nil {
					t.Fatalf("transition %d (%s): %v", i, tr, err)
				}
			}
			if got := m.Current(); got != tt.want {
				t.Errorf("final state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMachine_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup []Transition
		apply Transition
	}{
		{name: "resume before create", apply: TransitionResume},
		{name: "start before create", apply: TransitionStart},
		{name: "double create", setup: []Transition{TransitionCreate}, apply: TransitionCreate},
		{
			name:  "pause without resume",
			setup: []Transition{TransitionCreate, TransitionStart},
			apply: TransitionPause,
		},
		{
			name:  "destroy from resumed",
			setup: []Transition{TransitionCreate, TransitionStart, TransitionResume},
			apply: TransitionDestroy,
		},
		{
			name: "anything after destroy",
			setup: []Transition{
				TransitionCreate, TransitionStart, TransitionResume,
				TransitionPause, TransitionStop, TransitionDestroy,
			},
			apply: TransitionStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, tr := range tt.setup {
				if err := m.Apply(tr); err != nil {
					t.Fatalf("setup %s: %v", tr, err)
				}
			}
			before := m.Current()

			err := m.Apply(tt.apply)
			if err == nil {
				t.Fatalf("Apply(%s) from %s: expected error", tt.apply, before)
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("error does not unwrap to ErrInvalidTransition: %v", err)
			}
			var ite *InvalidTransitionError
			if !errors.As(err, &ite) {
				t.Fatalf("error is not *InvalidTransitionError: %T", err)
			}
			if ite.From != before || ite.Transition != tt.apply {
				t.Errorf("error details = {%s %s}, want {%s %s}",
					ite.From, ite.Transition, before, tt.apply)
			}
			if got := m.Current(); got != before {
				t.Errorf("state changed on rejected transition: %s -> %s", before, got)
			}
		})
	}
}

func TestMachine_ObserverOrderAndArgs(t *testing.T) {
	m := NewMachine()

	type call struct {
		old, new State
		tr       Transition
	}
	var calls []call
	m.AddObserver(func(old, new State, tr Transition) {
		calls = append(calls, call{old, new, tr})
	})

	seq := []Transition{TransitionCreate, TransitionStart, TransitionResume}
	for _, tr := range seq {
		if err := m.Apply(tr); err != nil {
			t.Fatalf("Apply(%s): %v", tr, err)
		}
	}

	want := []call{
		{StateInitial, StateCreated, TransitionCreate},
		{StateCreated, StateStarted, TransitionStart},
		{StateStarted, StateResumed, TransitionResume},
	}
	if len(calls) != len(want) {
		t.Fatalf("observer called %d times, want %d", len(calls), len(want))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, calls[i], want[i])
		}
	}
}

func TestMachine_ObserverNotCalledOnRejection(t *testing.T) {
	m := NewMachine()
	calls := 0
	m.AddObserver(func(_, _ State, _ Transition) { calls++ })

	if err := m.Apply(TransitionResume); err == nil {
		t.Fatal("expected rejection")
	}
	if calls != 0 {
		t.Errorf("observer called %d times on rejected transition", calls)
	}
}

func TestMachine_Foreground(t *testing.T) {
	m := NewMachine()
	if m.Foreground() {
		t.Error("initial state reported foreground")
	}

	steps := []struct {
		tr   Transition
		want bool
	}{
		{TransitionCreate, false},
		{TransitionStart, true},
		{TransitionResume, true},
		{TransitionPause, true},
		{TransitionStop, false},
		{TransitionDestroy, false},
	}
	for _, s := range steps {
		if err := m.Apply(s.tr); err != nil {
			t.Fatalf("Apply(%s): %v", s.tr, err)
		}
		if got := m.Foreground(); got != s.want {
			t.Errorf("after %s: Foreground() = %v, want %v", s.tr, got, s.want)
		}
	}
}
