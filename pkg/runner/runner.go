// Package runner drives the frame loop: it waits for a frame-ready
// condition, collects pending input, invokes the application's update call,
// and submits the draw output for presentation. It is the only component
// that calls into the toolkit, and it does so from a single goroutine.
package runner

import (
	stderrors "errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-ember/ember/pkg/app"
	"github.com/go-ember/ember/pkg/diag"
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/event"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/lifecycle"
	"github.com/go-ember/ember/pkg/log"
	"github.com/go-ember/ember/pkg/paint"
	"github.com/go-ember/ember/pkg/persist"
	"github.com/go-ember/ember/pkg/surface"
)

// State is the coordinator's own loop state, exposed for diagnostics.
type State int

const (
	// StateIdle means the loop is waiting for input or a repaint deadline.
	StateIdle State = iota
	// StateWaitingForSurface means the activity is resumed but no valid
	// surface handle is held yet.
	StateWaitingForSurface
	// StateRendering means a frame is being produced.
	StateRendering
	// StateSuspended means frame production is halted until a resume
	// transition; the loop blocks without polling.
	StateSuspended
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaitingForSurface:
		return "waiting-for-surface"
	case StateRendering:
		return "rendering"
	case StateSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// Platform receives the side effects an update requested (soft keyboard,
// clipboard, URLs). Implemented by the Android glue; nil-safe.
type Platform interface {
	ShowSoftInput(show bool)
	SetClipboard(text string)
	OpenURL(url string)
}

// Config wires the coordinator's collaborators.
type Config struct {
	App        app.Application
	Queue      *event.Queue
	Machine    *lifecycle.Machine
	Surfaces   *surface.Manager
	Translator *input.Translator
	Bridge     *persist.Bridge
	Platform   Platform
	// Timing is optional frame diagnostics.
	Timing *diag.FrameTimingBuffer
}

// Runner is the frame loop coordinator. All fields below cfg are owned by
// the loop goroutine except where noted.
type Runner struct {
	cfg    Config
	logger zerolog.Logger

	mu    sync.Mutex
	state State

	// explicitRepaint is set from any thread by RequestFrame.
	explicitRepaint atomic.Bool

	// Loop-owned state.
	repaint         paint.RepaintHint
	started         time.Time
	darkMode        bool
	keyboardVisible bool
	closed          bool

	done chan struct{}
}

// New creates a coordinator and registers the surface manager's lifecycle
// observer so the graphics target tracks foreground state.
func New(cfg Config) *Runner {
	r := &Runner{
		cfg:     cfg,
		logger:  log.For("runner"),
		repaint: paint.OnInput(),
		started: time.Now(),
		done:    make(chan struct{}),
	}
	// First frame renders as soon as the surface is ready.
	r.explicitRepaint.Store(true)
	cfg.Machine.AddObserver(cfg.Surfaces.OnLifecycle)
	return r
}

// Start launches the render loop goroutine.
func (r *Runner) Start() {
	go r.loop()
}

// Done is closed when the loop has exited after a destroy transition.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// State returns the coordinator's current loop state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// RequestFrame asks for a frame outside the normal repaint schedule.
// Safe to call from any goroutine.
func (r *Runner) RequestFrame() {
	r.explicitRepaint.Store(true)
	r.cfg.Queue.Signal()
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

func (r *Runner) loop() {
	defer close(r.done)

	for {
		r.wait()

		for _, entry := range r.cfg.Queue.Drain() {
			r.processEvent(entry.Event)
			entry.Ack()
		}

		if r.closed {
			r.logger.Info().Msg("frame loop stopped")
			return
		}

		r.syncState()
		if r.shouldRender() {
			r.renderFrame()
		}
	}
}

// wait blocks until there is work: an event arrived, the repaint deadline
// elapsed, or a frame is already due. While suspended or without a surface
// the only wake source is the queue — the loop never polls.
func (r *Runner) wait() {
	if r.cfg.Queue.Len() > 0 {
		return
	}

	suspended := r.cfg.Machine.Current() != lifecycle.StateResumed
	if suspended || !r.cfg.Surfaces.IsReady() {
		<-r.cfg.Queue.Wake()
		return
	}

	if r.frameDue() {
		return
	}

	if r.repaint.Mode == paint.RepaintAt {
		timer := time.NewTimer(time.Until(r.repaint.At))
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-r.cfg.Queue.Wake():
		}
		return
	}

	<-r.cfg.Queue.Wake()
}

// frameDue reports whether a frame must be produced now, assuming the
// surface is ready.
func (r *Runner) frameDue() bool {
	if r.explicitRepaint.Load() || r.cfg.Translator.HasPending() {
		return true
	}
	switch r.repaint.Mode {
	case paint.RepaintContinuous:
		return true
	case paint.RepaintAt:
		return !time.Now().Before(r.repaint.At)
	default:
		return false
	}
}

func (r *Runner) shouldRender() bool {
	if r.cfg.Machine.Current() != lifecycle.StateResumed {
		return false
	}
	if !r.cfg.Surfaces.IsReady() {
		return false
	}
	return r.frameDue()
}

func (r *Runner) syncState() {
	switch {
	case r.cfg.Machine.Current() != lifecycle.StateResumed:
		r.setState(StateSuspended)
	case !r.cfg.Surfaces.IsReady():
		r.setState(StateWaitingForSurface)
	default:
		r.setState(StateIdle)
	}
}

func (r *Runner) processEvent(ev event.Event) {
	switch e := ev.(type) {
	case event.LifecycleEvent:
		r.applyLifecycle(e.Transition)

	case event.SurfaceAvailableEvent:
		r.cfg.Surfaces.Available(e.Handle, e.Size, e.Scale)
		if e.Scale > 0 {
			r.cfg.Translator.SetScale(e.Scale)
		}
		r.explicitRepaint.Store(true)

	case event.SurfaceChangedEvent:
		r.cfg.Surfaces.Changed(e.Size, e.Scale)
		if e.Scale > 0 {
			r.cfg.Translator.SetScale(e.Scale)
		}
		r.explicitRepaint.Store(true)

	case event.SurfaceDestroyedEvent:
		r.cfg.Surfaces.Destroyed()

	case event.ConfigChangedEvent:
		if e.Scale > 0 {
			r.cfg.Translator.SetScale(e.Scale)
		}
		r.darkMode = e.DarkMode
		r.explicitRepaint.Store(true)

	case event.LowMemoryEvent:
		if h, ok := r.cfg.App.(app.MemoryPressureHandler); ok {
			h.OnLowMemory()
		}

	case event.InputEvent:
		r.cfg.Translator.HandleRaw(e.Raw)
	}
}

func (r *Runner) applyLifecycle(t lifecycle.Transition) {
	if err := r.cfg.Machine.Apply(t); err != nil {
		// Rejected transition: prior state retained, loop continues.
		errors.Report(&errors.EmberError{
			Op:   "runner.applyLifecycle",
			Kind: errors.KindLifecycle,
			Err:  err,
		})
		return
	}

	r.logger.Debug().Str("transition", t.String()).
		Str("state", r.cfg.Machine.Current().String()).
		Msg("lifecycle transition")

	switch t {
	case lifecycle.TransitionCreate:
		// Restore happens before any frame; exactly once per instance.
		r.cfg.Bridge.Restore(r.cfg.App)
		r.explicitRepaint.Store(true)

	case lifecycle.TransitionPause:
		// Must complete before the platform callback returns: the process
		// may be killed without further warning.
		r.cfg.Bridge.Save(r.cfg.App)

	case lifecycle.TransitionResume:
		r.explicitRepaint.Store(true)

	case lifecycle.TransitionDestroy:
		// Terminal. The surface manager's observer already released the
		// graphics target during Apply; nothing may render after this.
		r.closed = true
		r.cfg.Queue.Close()
	}
}

// renderFrame produces one frame: snapshot input, run the update, submit
// the output, store the repaint hint.
func (r *Runner) renderFrame() {
	r.setState(StateRendering)
	defer r.syncState()

	// Re-check immediately before using the surface; it may have been
	// invalidated by an event processed in this same drain.
	if !r.cfg.Surfaces.IsReady() {
		return
	}

	r.explicitRepaint.Store(false)
	events := r.cfg.Translator.Snapshot()

	frame := app.Frame{
		Events:   events,
		Size:     r.cfg.Surfaces.LogicalSize(),
		Scale:    r.cfg.Surfaces.Scale(),
		Time:     time.Since(r.started),
		DarkMode: r.darkMode,
	}

	frameStart := time.Now()
	out, hint, err := r.cfg.App.Update(frame)
	r.repaint = hint

	if err != nil {
		// Non-fatal: skip presentation, keep the loop alive.
		errors.Report(&errors.EmberError{
			Op:   "runner.renderFrame",
			Kind: errors.KindToolkit,
			Err:  err,
		})
		return
	}
	if out == nil {
		return
	}

	r.applySideEffects(out)

	if err := r.cfg.Surfaces.Present(out); err != nil {
		if stderrors.Is(err, surface.ErrInvalidated) {
			// Expected race with surface teardown; drop silently.
			if r.cfg.Timing != nil {
				r.cfg.Timing.AddDropped()
			}
			r.logger.Debug().Msg("frame dropped: surface invalidated")
			return
		}
		errors.Report(&errors.EmberError{
			Op:   "runner.renderFrame",
			Kind: errors.KindSurface,
			Err:  err,
		})
		return
	}

	if r.cfg.Timing != nil {
		r.cfg.Timing.Add(time.Since(frameStart))
	}
}

// applySideEffects relays the platform requests the toolkit made during the
// frame. Keyboard visibility toggles only on edges.
func (r *Runner) applySideEffects(out *paint.Output) {
	p := r.cfg.Platform
	if p == nil {
		return
	}

	switch {
	case out.ShowKeyboard && !r.keyboardVisible:
		r.logger.Debug().Msg("show keyboard requested")
		p.ShowSoftInput(true)
		r.keyboardVisible = true
	case !out.ShowKeyboard && r.keyboardVisible:
		r.logger.Debug().Msg("hide keyboard requested")
		p.ShowSoftInput(false)
		r.keyboardVisible = false
	}

	if out.CopyText != "" {
		p.SetClipboard(out.CopyText)
	}
	if out.OpenURL != "" {
		p.OpenURL(out.OpenURL)
	}
}
