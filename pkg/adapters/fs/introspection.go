package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// NoteStoreState exposes internal state for observability.
type NoteStoreState struct {
	Dir           string     `json:"dir"`
	ReadOnly      bool       `json:"read_only"`
	WatcherActive bool       `json:"watcher_active"`
	LastEvent     *time.Time `json:"last_event,omitempty"`
}

// State implements introspection.Introspectable.
func (s *NoteStore) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NoteStoreState{
		Dir:           s.dir,
		ReadOnly:      s.config.ReadOnly,
		WatcherActive: s.watcherActive,
		LastEvent:     s.lastEvent,
	}
}

// ComponentType implements introspection.Component.
func (s *NoteStore) ComponentType() string {
	return "fs-notes"
}

// LedgerState exposes internal state for observability.
type LedgerState struct {
	Path     string `json:"path"`
	ReadOnly bool   `json:"read_only"`
	Writes   int    `json:"writes"`
}

// State implements introspection.Introspectable.
func (l *Ledger) State() any {
	l.mu.Lock()
	defer l.mu.Unlock()

	return LedgerState{
		Path:     l.path,
		ReadOnly: l.config.ReadOnly,
		Writes:   l.writes,
	}
}

// ComponentType implements introspection.Component.
func (l *Ledger) ComponentType() string {
	return "fs-ledger"
}

// State implements introspection.Introspectable.
func (s *ImageStore) State() any {
	return map[string]any{
		"dir":       s.dir,
		"read_only": s.config.ReadOnly,
	}
}

// ComponentType implements introspection.Component.
func (s *ImageStore) ComponentType() string {
	return "fs-images"
}

// State implements introspection.Introspectable.
func (d *SettingsDocument) State() any {
	return map[string]any{
		"path":      d.path,
		"read_only": d.config.ReadOnly,
	}
}

// ComponentType implements introspection.Component.
func (d *SettingsDocument) ComponentType() string {
	return "fs-settings"
}

var (
	_ introspection.Introspectable = (*NoteStore)(nil)
	_ introspection.Component      = (*NoteStore)(nil)
	_ introspection.Introspectable = (*Ledger)(nil)
	_ introspection.Component      = (*Ledger)(nil)
	_ introspection.Introspectable = (*ImageStore)(nil)
	_ introspection.Component      = (*ImageStore)(nil)
	_ introspection.Introspectable = (*SettingsDocument)(nil)
	_ introspection.Component      = (*SettingsDocument)(nil)
)
