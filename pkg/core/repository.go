package core

import "context"

// NoteRepository stores one markdown document per date key.
// Adhering to this interface keeps the Service independent of the
// underlying storage mechanism.
type NoteRepository interface {
	// Load returns the note content, or "" with a nil error if no note exists.
	Load(ctx context.Context, date string) (string, error)

	// Save creates or fully overwrites the note.
	Save(ctx context.Context, date, content string) error

	// Delete removes the note. Deleting a missing note is not an error.
	Delete(ctx context.Context, date string) error

	// List returns the keys of all notes starting with prefix, in storage order.
	List(ctx context.Context, prefix string) ([]string, error)

	// All returns every stored note with its content.
	All(ctx context.Context) ([]Note, error)
}

// ReminderLedger maps a note date to a single review date.
// Implementations persist the whole ledger on every mutation.
type ReminderLedger interface {
	// Set stores or replaces the review date for noteDate.
	Set(ctx context.Context, noteDate, reviewDate string) error

	// Delete removes the reminder and reports whether one existed.
	Delete(ctx context.Context, noteDate string) (bool, error)

	// All returns a copy of the full ledger.
	All(ctx context.Context) (map[string]string, error)
}

// ImageStore persists pasted binary payloads under generated names.
type ImageStore interface {
	// Save writes data and returns the generated file name ("" on failure).
	Save(ctx context.Context, data []byte, mimeType string) (string, error)

	// Path resolves a file name returned by Save to its absolute location.
	Path(name string) string

	// Root is the directory holding every image.
	Root() string
}

// SettingsStore loads and saves the settings document.
type SettingsStore interface {
	// Load never fails: unreadable or missing documents yield DefaultSettings.
	Load(ctx context.Context) Settings

	// Save writes the document verbatim.
	Save(ctx context.Context, s Settings) error
}

// Initializer is implemented by stores that need setup (e.g. creating directories).
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Watchable is implemented by note repositories that can report external changes.
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
