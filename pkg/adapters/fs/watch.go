package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/noir/pkg/core"
)

// Watch reports changes to note files whose name matches pattern (doublestar
// syntax, default "*.md"). The returned channel is closed when ctx ends.
//
// Saves go through a temp file and a rename, so an overwrite usually arrives
// as CREATE rather than MODIFY.
func (s *NoteStore) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = notePattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}

	size := s.config.EventBuffer
	if size <= 0 {
		size = DefaultEventBuffer
	}
	events := make(chan core.Event, size)
	s.setWatcherActive(true)

	logger := s.config.logger()
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer s.setWatcherActive(false)

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, ok := s.toEvent(ev, pattern)
				if !ok {
					continue
				}
				logger.Debug("note changed", "type", e.Type, "date", e.Date)
				s.recordEvent()
				select {
				case events <- e:
				case <-ctx.Done():
					return nil
				}

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Error("fsnotify error", "error", wErr)
				if s.config.ErrorHandler != nil {
					s.config.ErrorHandler(wErr)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(fmt.Errorf("watcher panic: %w", err))
		} else {
			logger.Error("watcher panic", "error", err)
		}
	}))

	return events, nil
}

// toEvent maps a raw fsnotify event to a note event.
func (s *NoteStore) toEvent(ev fsnotify.Event, pattern string) (core.Event, bool) {
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, TempFilePrefix) || !strings.HasSuffix(name, NoteExt) {
		return core.Event{}, false
	}
	if ok, _ := doublestar.Match(pattern, name); !ok {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		t = core.EventCreate
	case ev.Has(fsnotify.Write):
		t = core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{
		Type:      t,
		Date:      strings.TrimSuffix(name, NoteExt),
		Timestamp: time.Now().Unix(),
	}, true
}

func (s *NoteStore) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *NoteStore) recordEvent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.lastEvent = &now
}

var _ core.Watchable = (*NoteStore)(nil)
