// Package android is the platform entry point. The activity's binding layer
// implements Host and forwards every platform callback to the Embedder, which
// enqueues typed events for the frame loop. Callbacks arrive on a
// platform-owned thread; none of them may block on rendering except the
// synchronous contracts (pause, surface teardown, destroy), which wait until
// the render thread has fully processed the event.
package android

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-ember/ember/pkg/app"
	"github.com/go-ember/ember/pkg/config"
	"github.com/go-ember/ember/pkg/diag"
	"github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/event"
	"github.com/go-ember/ember/pkg/gles"
	"github.com/go-ember/ember/pkg/input"
	"github.com/go-ember/ember/pkg/lifecycle"
	"github.com/go-ember/ember/pkg/log"
	"github.com/go-ember/ember/pkg/persist"
	"github.com/go-ember/ember/pkg/runner"
	"github.com/go-ember/ember/pkg/surface"
)

// Host is the platform side of the embedder, implemented by the activity's
// binding layer. All methods are called from the render thread except
// LoadState/SaveState, which run inside synchronous lifecycle callbacks.
type Host interface {
	// Manifest returns the ember.yaml bytes from the APK assets, or nil when
	// the application ships without one.
	Manifest() []byte
	// DensityDPI returns the display density in dots per inch.
	DensityDPI() float64
	// DarkMode reports whether the system night mode is active.
	DarkMode() bool

	ShowSoftInput(show bool)
	SetClipboard(text string)
	OpenURL(url string)

	// SaveState and LoadState bind to the platform's saved-instance
	// mechanism. A missing prior state is (nil, false), never an error.
	SaveState(key string, data []byte) error
	LoadState(key string) ([]byte, bool)
}

var (
	registerMu sync.Mutex
	registered app.Application
	current    *Embedder
)

// Main registers the application and parks the main goroutine. The Android
// runtime drives everything else through the embedder callbacks; main must
// not return or the process exits.
func Main(application app.Application) {
	registerMu.Lock()
	registered = application
	registerMu.Unlock()
	select {}
}

// StartRegistered starts the embedder for the application registered by
// Main. Called by the binding layer from the activity's onCreate.
func StartRegistered(host Host, instanceKey string) (*Embedder, error) {
	registerMu.Lock()
	application := registered
	registerMu.Unlock()
	if application == nil {
		return nil, fmt.Errorf("android: no application registered; call android.Main first")
	}
	return Start(application, host, instanceKey)
}

// Current returns the running embedder, or nil before Start.
func Current() *Embedder {
	registerMu.Lock()
	defer registerMu.Unlock()
	return current
}

// Embedder owns the event queue, the lifecycle machine, and the frame loop
// for one activity instance.
type Embedder struct {
	cfg    *config.Manifest
	host   Host
	logger zerolog.Logger

	queue      *event.Queue
	machine    *lifecycle.Machine
	translator *input.Translator
	surfaces   *surface.Manager
	bridge     *persist.Bridge
	timing     *diag.FrameTimingBuffer
	debug      *diag.Server
	runner     *runner.Runner
}

// Start builds the embedder, launches the frame loop, and delivers the
// create transition. instanceKey binds saved state across process death;
// empty means a fresh launch. Start returns once the application's prior
// state (if any) has been restored.
func Start(application app.Application, host Host, instanceKey string) (*Embedder, error) {
	cfg, err := config.Load(host.Manifest())
	if err != nil {
		return nil, err
	}

	log.Configure(log.Config{Level: cfg.Logging.Level, Tag: cfg.App.Name})

	e := &Embedder{
		cfg:    cfg,
		host:   host,
		logger: log.For("android"),
	}

	scale := cfg.ScaleForDensity(host.DensityDPI())
	e.queue = event.NewQueue()
	e.machine = lifecycle.NewMachine()
	e.translator = input.NewTranslator(scale, *cfg.Input.CoalesceMoves)
	e.surfaces = surface.NewManager(e.machine, gles.NewBackend())
	e.bridge = persist.NewBridgeForInstance(hostStore{host}, instanceKey)
	e.timing = diag.NewFrameTimingBuffer(cfg.Diagnostics.FrameSamples)

	e.runner = runner.New(runner.Config{
		App:        application,
		Queue:      e.queue,
		Machine:    e.machine,
		Surfaces:   e.surfaces,
		Translator: e.translator,
		Bridge:     e.bridge,
		Platform:   hostPlatform{host},
		Timing:     e.timing,
	})

	if port := cfg.Diagnostics.DebugServerPort; port > 0 {
		e.debug = diag.NewServer(e.timing)
		if _, err := e.debug.Start(port); err != nil {
			// Diagnostics are best-effort; the app still runs without them.
			e.logger.Warn().Err(err).Msg("debug server unavailable")
			e.debug = nil
		}
	}

	e.runner.Start()

	// Seed the theme before the first frame, then deliver create. The
	// create push blocks until the restore has been handed to the app.
	e.queue.Push(event.ConfigChangedEvent{Scale: scale, DarkMode: host.DarkMode()})
	e.queue.PushSync(event.LifecycleEvent{Transition: lifecycle.TransitionCreate})

	registerMu.Lock()
	current = e
	registerMu.Unlock()

	e.logger.Info().
		Str("app", cfg.App.Name).
		Str("instance", e.bridge.Instance()).
		Float64("scale", scale).
		Msg("embedder started")
	return e, nil
}

// InstanceKey returns the key the application's saved state is stored under.
// The binding layer persists it into the instance bundle so a recreated
// activity can hand it back to Start.
func (e *Embedder) InstanceKey() string {
	return e.bridge.Instance()
}

// LoopState returns the frame loop's current state, for diagnostics.
func (e *Embedder) LoopState() runner.State {
	return e.runner.State()
}

// RequestFrame schedules a frame outside the repaint hint, e.g. when the
// binding layer knows content changed. Safe from any thread.
func (e *Embedder) RequestFrame() {
	e.runner.RequestFrame()
}

// OnStart relays the activity's onStart callback.
func (e *Embedder) OnStart() {
	defer errors.Recover("android.OnStart")
	e.queue.Push(event.LifecycleEvent{Transition: lifecycle.TransitionStart})
}

// OnResume relays the activity's onResume callback.
func (e *Embedder) OnResume() {
	defer errors.Recover("android.OnResume")
	e.queue.Push(event.LifecycleEvent{Transition: lifecycle.TransitionResume})
}

// OnPause relays the activity's onPause callback. It blocks until the
// application's state has been saved: the process may be killed without
// further notice once this returns.
func (e *Embedder) OnPause() {
	defer errors.Recover("android.OnPause")
	e.queue.PushSync(event.LifecycleEvent{Transition: lifecycle.TransitionPause})
}

// OnStop relays the activity's onStop callback.
func (e *Embedder) OnStop() {
	defer errors.Recover("android.OnStop")
	e.queue.Push(event.LifecycleEvent{Transition: lifecycle.TransitionStop})
}

// OnDestroy relays the activity's onDestroy callback. It blocks until the
// frame loop has fully shut down and releases the debug server.
func (e *Embedder) OnDestroy() {
	defer errors.Recover("android.OnDestroy")
	e.queue.PushSync(event.LifecycleEvent{Transition: lifecycle.TransitionDestroy})
	<-e.runner.Done()
	if e.debug != nil {
		e.debug.Stop()
	}

	registerMu.Lock()
	if current == e {
		current = nil
	}
	registerMu.Unlock()
	e.logger.Info().Msg("embedder stopped")
}

// OnSurfaceAvailable relays surfaceCreated. nativeWindow is the
// ANativeWindow pointer; it stays valid until OnSurfaceDestroyed returns.
// Blocks until the graphics target has been built so the platform never
// observes a half-initialized surface.
func (e *Embedder) OnSurfaceAvailable(nativeWindow uintptr, width, height int, densityDPI float64) {
	defer errors.Recover("android.OnSurfaceAvailable")
	e.queue.PushSync(event.SurfaceAvailableEvent{
		Handle: WindowHandle(nativeWindow),
		Size:   geomSize(width, height),
		Scale:  e.cfg.ScaleForDensity(densityDPI),
	})
}

// OnSurfaceChanged relays surfaceChanged (resize or density change).
func (e *Embedder) OnSurfaceChanged(width, height int, densityDPI float64) {
	defer errors.Recover("android.OnSurfaceChanged")
	e.queue.Push(event.SurfaceChangedEvent{
		Size:  geomSize(width, height),
		Scale: e.cfg.ScaleForDensity(densityDPI),
	})
}

// OnSurfaceDestroyed relays surfaceDestroyed. It blocks until every
// reference to the native window has been released; the platform frees the
// window the moment this returns.
func (e *Embedder) OnSurfaceDestroyed() {
	defer errors.Recover("android.OnSurfaceDestroyed")
	e.queue.PushSync(event.SurfaceDestroyedEvent{})
}

// OnConfigurationChanged relays density and night-mode changes that arrive
// without a surface recreation.
func (e *Embedder) OnConfigurationChanged(densityDPI float64, darkMode bool) {
	defer errors.Recover("android.OnConfigurationChanged")
	e.queue.Push(event.ConfigChangedEvent{
		Scale:    e.cfg.ScaleForDensity(densityDPI),
		DarkMode: darkMode,
	})
}

// OnLowMemory relays the platform's memory pressure signal.
func (e *Embedder) OnLowMemory() {
	defer errors.Recover("android.OnLowMemory")
	e.queue.Push(event.LowMemoryEvent{})
}

// OnPointer enqueues one raw pointer sample.
func (e *Embedder) OnPointer(ev input.RawPointer) {
	defer errors.Recover("android.OnPointer")
	e.queue.Push(event.InputEvent{Raw: ev})
}

// OnKey enqueues one raw key event. The binding layer resolves the unicode
// character and the dead-key flag through the platform's key character map
// before calling this.
func (e *Embedder) OnKey(ev input.RawKey) {
	defer errors.Recover("android.OnKey")
	e.queue.Push(event.InputEvent{Raw: ev})
}

// OnText enqueues a finalized text run delivered outside key events.
func (e *Embedder) OnText(ev input.RawText) {
	defer errors.Recover("android.OnText")
	e.queue.Push(event.InputEvent{Raw: ev})
}

// OnComposition enqueues an IME composition update.
func (e *Embedder) OnComposition(ev input.RawComposition) {
	defer errors.Recover("android.OnComposition")
	e.queue.Push(event.InputEvent{Raw: ev})
}

// hostPlatform adapts Host to the frame loop's side-effect sink.
type hostPlatform struct {
	host Host
}

func (p hostPlatform) ShowSoftInput(show bool)  { p.host.ShowSoftInput(show) }
func (p hostPlatform) SetClipboard(text string) { p.host.SetClipboard(text) }
func (p hostPlatform) OpenURL(url string)       { p.host.OpenURL(url) }

// hostStore adapts Host to the persistence bridge's store.
type hostStore struct {
	host Host
}

func (s hostStore) Save(key string, data []byte) error { return s.host.SaveState(key, data) }
func (s hostStore) Load(key string) ([]byte, bool)     { return s.host.LoadState(key) }
