// Package persist bridges application state to the platform's save/restore
// mechanism. The bytes are opaque: versioning and schema belong to the
// application layer, never to the embedder.
package persist

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	emberrs "github.com/go-ember/ember/pkg/errors"
	"github.com/go-ember/ember/pkg/log"
)

// ErrSerialization reports that the application failed to serialize its
// state. The bridge degrades this to an empty save: a crash inside the save
// path is worse than a lost save.
var ErrSerialization = errors.New("state serialization failed")

// Saver is the application-side save contract (a subset of app.Application,
// restated here to avoid a dependency cycle).
type Saver interface {
	SaveState() ([]byte, error)
	RestoreState(data []byte) error
}

// Store is the platform's saved-state mechanism, keyed per activity
// instance. A missing prior state is (nil, false), never an error.
type Store interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, bool)
}

// Bridge performs the save and restore calls at the appropriate lifecycle
// points. Restore is delivered exactly once per instance lifetime; a second
// Created transition in the same instance does not replay it.
type Bridge struct {
	store    Store
	instance string
	restored bool
}

// NewBridge creates a bridge over the given store with a fresh instance key.
func NewBridge(store Store) *Bridge {
	return &Bridge{store: store, instance: uuid.NewString()}
}

// NewBridgeForInstance creates a bridge bound to an existing instance key,
// used when the platform recreates the activity after process death.
func NewBridgeForInstance(store Store, instance string) *Bridge {
	if instance == "" {
		instance = uuid.NewString()
	}
	return &Bridge{store: store, instance: instance}
}

// Instance returns the activity instance key the state is stored under.
func (b *Bridge) Instance() string {
	return b.instance
}

// Save serializes the application's state into the store. Invoked
// synchronously during the Paused transition: the platform may kill the
// process the moment the callback returns, so this must complete first.
// Serialization failures are reported and degrade to an empty save.
func (b *Bridge) Save(s Saver) {
	data, err := s.SaveState()
	if err != nil {
		emberrs.Report(&emberrs.EmberError{
			Op:   "persist.Save",
			Kind: emberrs.KindPersist,
			Err:  fmt.Errorf("%w: %v", ErrSerialization, err),
		})
		data = nil
	}
	if err := b.store.Save(b.instance, data); err != nil {
		emberrs.Report(&emberrs.EmberError{
			Op:   "persist.Save",
			Kind: emberrs.KindPersist,
			Err:  err,
		})
		return
	}
	logger := log.For("persist")
	logger.Debug().Int("bytes", len(data)).Msg("state saved")
}

// Restore hands previously saved bytes back to the application, exactly
// once per instance lifetime. Invoked synchronously during the Created
// transition. A missing prior state is not an error; the application's
// RestoreState is simply not called.
func (b *Bridge) Restore(s Saver) {
	if b.restored {
		return
	}
	b.restored = true

	data, ok := b.store.Load(b.instance)
	if !ok || len(data) == 0 {
		return
	}
	if err := s.RestoreState(data); err != nil {
		// A failed restore is logged and dropped; the app starts fresh,
		// matching the platform's behavior for corrupt bundles.
		emberrs.Report(&emberrs.EmberError{
			Op:   "persist.Restore",
			Kind: emberrs.KindPersist,
			Err:  err,
		})
		return
	}
	logger := log.For("persist")
	logger.Debug().Int("bytes", len(data)).Msg("state restored")
}
