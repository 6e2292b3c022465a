package platform

import (
	"log/slog"

	"github.com/aretw0/noir/pkg/core"
)

// options holds the internal configuration for the noir service.
type options struct {
	logger        *slog.Logger
	clock         core.Clock
	notes         core.NoteRepository
	reminders     core.ReminderLedger
	images        core.ImageStore
	settings      core.SettingsStore
	captureBuffer int
	eventBuffer   int
	watchErrors   func(error)
	readOnly      bool
	mustExist     bool
	forceTemp     bool
	devSafety     bool
}

// Option defines a functional option for configuring noir.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithLogger sets the logger for the service and its stores.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the source of "today" (useful for testing).
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithNoteRepository injects a custom note store (e.g. mock).
// If provided, the default filesystem store is skipped.
func WithNoteRepository(repo core.NoteRepository) Option {
	return func(o *options) {
		o.notes = repo
	}
}

// WithReminderLedger injects a custom reminder ledger.
func WithReminderLedger(ledger core.ReminderLedger) Option {
	return func(o *options) {
		o.reminders = ledger
	}
}

// WithImageStore injects a custom image store.
func WithImageStore(store core.ImageStore) Option {
	return func(o *options) {
		o.images = store
	}
}

// WithSettingsStore injects a custom settings store.
func WithSettingsStore(store core.SettingsStore) Option {
	return func(o *options) {
		o.settings = store
	}
}

// WithCaptureBuffer sets the capacity of the captured-text channel.
// Zero means default (16).
func WithCaptureBuffer(size int) Option {
	return func(o *options) {
		o.captureBuffer = size
	}
}

// WithEventBuffer sets the capacity of the note watcher channel.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the
// note watcher loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.watchErrors = fn
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Saves and deletes return core.ErrReadOnly.
// 2. No directories are created.
// 3. The dev sandbox is bypassed (the real path is used).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or `go test`.
// By default (true), noir re-roots the data directory into the temp dir so a
// development run never touches the real notes.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
