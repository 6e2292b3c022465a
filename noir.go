package noir

import (
	"log/slog"

	"github.com/aretw0/noir/internal/platform"
	"github.com/aretw0/noir/pkg/core"
)

// --- Types ---

// Service is the note and reminder store returned by New.
type Service = core.Service

// Note is a dated markdown note.
type Note = core.Note

// Settings is the user settings document.
type Settings = core.Settings

// DueReminder is a reminder whose review date has arrived.
type DueReminder = core.DueReminder

// Config is the command-line configuration file.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring noir.
type Option = platform.Option

// WithLogger sets the logger for the service and its stores.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the source of "today".
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithReadOnly rejects every write and creates no directories.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithDevSafety controls the temp-dir sandbox used under `go run` and `go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithMustExist ensures the data directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithNoteRepository injects a custom note store.
func WithNoteRepository(repo core.NoteRepository) Option {
	return platform.WithNoteRepository(repo)
}

// WithReminderLedger injects a custom reminder ledger.
func WithReminderLedger(ledger core.ReminderLedger) Option {
	return platform.WithReminderLedger(ledger)
}

// WithImageStore injects a custom image store.
func WithImageStore(store core.ImageStore) Option {
	return platform.WithImageStore(store)
}

// WithSettingsStore injects a custom settings store.
func WithSettingsStore(store core.SettingsStore) Option {
	return platform.WithSettingsStore(store)
}

// WithCaptureBuffer sets the capacity of the captured-text channel.
func WithCaptureBuffer(size int) Option {
	return platform.WithCaptureBuffer(size)
}

// WithEventBuffer sets the capacity of the note watcher channel.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithWatcherErrorHandler registers a callback for watcher loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a Service over the data directory at path.
func New(path string, opts ...Option) (*Service, error) {
	return platform.New(path, opts...)
}

// LoadConfig reads a YAML config file plus optional .env files.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	return platform.LoadConfig(path, envFiles...)
}

// --- Safety & Utils ---

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() (string, error) {
	return platform.DefaultDataDir()
}

// ResolveDataDir determines the actual data directory based on safety rules.
func ResolveDataDir(userPath string, forceTemp bool) string {
	return platform.ResolveDataDir(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}
