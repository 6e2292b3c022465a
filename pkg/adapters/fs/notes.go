package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/noir/pkg/core"
)

// notePattern matches every note file in the notes directory.
const notePattern = "*" + NoteExt

// NoteStore implements core.NoteRepository with one markdown file per date
// under <root>/notes.
type NoteStore struct {
	dir    string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastEvent     *time.Time
}

// NewNoteStore creates a note store. No I/O happens until a method is called.
func NewNoteStore(config Config) *NoteStore {
	return &NoteStore{
		dir:    filepath.Join(config.Root, NotesDir),
		config: config,
	}
}

// Dir returns the notes directory.
func (s *NoteStore) Dir() string {
	return s.dir
}

// Initialize creates the notes directory.
func (s *NoteStore) Initialize(ctx context.Context) error {
	return s.config.ensureDir(ctx, s.dir)
}

func (s *NoteStore) path(date string) string {
	return filepath.Join(s.dir, date+NoteExt)
}

// Load reads the note for date. A missing file yields "" and no error.
func (s *NoteStore) Load(ctx context.Context, date string) (string, error) {
	data, found, err := readOptional(s.path(date))
	if err != nil {
		return "", fmt.Errorf("failed to read note %s: %w", date, err)
	}
	if !found {
		return "", nil
	}
	return string(data), nil
}

// Save writes content as the whole note, replacing any previous version.
func (s *NoteStore) Save(ctx context.Context, date, content string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}
	if err := writeFileAtomic(s.path(date), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note %s: %w", date, err)
	}
	return nil
}

// Delete removes the note file if present.
func (s *NoteStore) Delete(ctx context.Context, date string) error {
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	removed, err := removeOptional(s.path(date))
	if err != nil {
		return fmt.Errorf("failed to delete note %s: %w", date, err)
	}
	if removed {
		s.config.logger().Debug("note deleted", "date", date)
	}
	return nil
}

// List returns the keys of notes whose key starts with prefix.
func (s *NoteStore) List(ctx context.Context, prefix string) ([]string, error) {
	var dates []string
	err := s.walk(ctx, func(date string) error {
		if strings.HasPrefix(date, prefix) {
			dates = append(dates, date)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// All returns every note with its content. Cost is one read per note.
func (s *NoteStore) All(ctx context.Context) ([]core.Note, error) {
	var notes []core.Note
	err := s.walk(ctx, func(date string) error {
		content, err := s.Load(ctx, date)
		if err != nil {
			return err
		}
		notes = append(notes, core.Note{Date: date, Content: content})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// walk calls fn with the key of every note file. A missing notes directory
// means there are no notes.
func (s *NoteStore) walk(ctx context.Context, fn func(date string) error) error {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return nil
	}

	err := doublestar.GlobWalk(os.DirFS(s.dir), notePattern, func(path string, d iofs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return fn(strings.TrimSuffix(path, NoteExt))
	})
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	return nil
}

var _ core.NoteRepository = (*NoteStore)(nil)
var _ core.Initializer = (*NoteStore)(nil)
