package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Layout of the data directory.
const (
	NotesDir      = "notes"
	ImagesDir     = "images"
	SettingsFile  = "settings.json"
	RemindersFile = "reminders.json"
	NoteExt       = ".md"
)

// DefaultEventBuffer is the watcher channel capacity when none is configured.
const DefaultEventBuffer = 100

// Config holds the configuration shared by the filesystem stores.
// Every store touches its own files under Root, so they can be built independently.
type Config struct {
	Root         string
	MustExist    bool
	ReadOnly     bool
	Logger       *slog.Logger
	EventBuffer  int
	ErrorHandler func(error) // Called on watcher errors in addition to logging.
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// ensureDir prepares dir inside the data directory.
//
// Workflow:
//  1. If MustExist, the data directory itself must already be there.
//  2. In read-only mode nothing is created.
//  3. Otherwise dir (and its parents) are created.
func (c Config) ensureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.MustExist {
		info, err := os.Stat(c.Root)
		if os.IsNotExist(err) {
			return fmt.Errorf("data directory does not exist: %s", c.Root)
		}
		if err != nil {
			return fmt.Errorf("failed to stat data directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("data directory is not a directory: %s", c.Root)
		}
	}

	if c.ReadOnly {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(dir), err)
	}
	return nil
}
