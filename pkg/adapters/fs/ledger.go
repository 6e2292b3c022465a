package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/aretw0/noir/pkg/core"
)

// Ledger implements core.ReminderLedger as a single JSON object
// {"<noteDate>": "<reviewDate>"} in <root>/reminders.json.
//
// Every mutation reads the whole document, changes it and rewrites it. The
// mutex makes that sequence atomic within the process; other processes
// writing the same file are not coordinated with.
type Ledger struct {
	path   string
	config Config

	mu     sync.Mutex
	writes int
}

// NewLedger creates a ledger. No I/O happens until a method is called.
func NewLedger(config Config) *Ledger {
	return &Ledger{
		path:   filepath.Join(config.Root, RemindersFile),
		config: config,
	}
}

// Path returns the location of the ledger document.
func (l *Ledger) Path() string {
	return l.path
}

// Set stores or replaces the review date of noteDate.
func (l *Ledger) Set(ctx context.Context, noteDate, reviewDate string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.load()
	entries[noteDate] = reviewDate
	return l.save(entries)
}

// Delete removes the reminder of noteDate. The document is rewritten only
// when an entry was actually removed.
func (l *Ledger) Delete(ctx context.Context, noteDate string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.load()
	if _, ok := entries[noteDate]; !ok {
		return false, nil
	}
	delete(entries, noteDate)
	if err := l.save(entries); err != nil {
		return false, err
	}
	return true, nil
}

// All returns a fresh copy of the ledger.
func (l *Ledger) All(ctx context.Context) (map[string]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(), nil
}

// load reads the ledger. Missing, unreadable or malformed documents degrade
// to an empty ledger, and entries whose value is not a string are skipped.
// Failures are logged, never returned.
func (l *Ledger) load() map[string]string {
	entries := make(map[string]string)

	data, found, err := readOptional(l.path)
	if err != nil {
		l.config.logger().Error("failed to read reminders", "path", l.path, "error", err)
		return entries
	}
	if !found {
		return entries
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		l.config.logger().Error("failed to parse reminders", "path", l.path, "error", err)
		return entries
	}

	// A bad value drops only its own entry.
	for noteDate, v := range raw {
		reviewDate, ok := v.(string)
		if !ok {
			l.config.logger().Warn("dropping malformed reminder", "path", l.path, "note", noteDate, "value", v)
			continue
		}
		entries[noteDate] = reviewDate
	}
	return entries
}

func (l *Ledger) save(entries map[string]string) error {
	if l.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := writeJSONAtomic(l.path, entries); err != nil {
		return fmt.Errorf("failed to save reminders: %w", err)
	}
	l.writes++
	return nil
}

var _ core.ReminderLedger = (*Ledger)(nil)
