package core

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// ServiceConfig wires the stores behind a Service.
type ServiceConfig struct {
	Notes     NoteRepository
	Reminders ReminderLedger
	Images    ImageStore
	Settings  SettingsStore
	Captures  *CaptureBus
	Clock     Clock
	Logger    *slog.Logger
}

// Service is the note and reminder store. Each method is one request from
// the UI layer and runs synchronously to completion.
type Service struct {
	notes     NoteRepository
	reminders ReminderLedger
	images    ImageStore
	settings  SettingsStore
	captures  *CaptureBus
	clock     Clock
	logger    *slog.Logger
}

// NewService creates a new Service.
func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		notes:     cfg.Notes,
		reminders: cfg.Reminders,
		images:    cfg.Images,
		settings:  cfg.Settings,
		captures:  cfg.Captures,
		clock:     cfg.Clock,
		logger:    cfg.Logger,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.captures == nil {
		s.captures = NewCaptureBus(0, s.clock)
	}
	return s
}

// Today returns the current date key.
func (s *Service) Today() string {
	return FormatDate(s.clock())
}

// --- Settings ---

// Settings returns the stored settings, or defaults.
func (s *Service) Settings(ctx context.Context) Settings {
	return s.settings.Load(ctx)
}

// SaveSettings persists settings verbatim.
func (s *Service) SaveSettings(ctx context.Context, settings Settings) error {
	return s.settings.Save(ctx, settings)
}

// --- Notes ---

// LoadNote returns the note content for date, or "" if there is none.
func (s *Service) LoadNote(ctx context.Context, date string) (string, error) {
	if err := ValidateKey(date); err != nil {
		return "", err
	}
	return s.notes.Load(ctx, date)
}

// SaveNote creates or overwrites the note for date.
func (s *Service) SaveNote(ctx context.Context, date, content string) error {
	if err := ValidateKey(date); err != nil {
		return err
	}
	return s.notes.Save(ctx, date, content)
}

// DeleteNote removes the note and any reminder keyed by the same date.
// The reminder cleanup is best-effort: a ledger failure is logged, not returned.
func (s *Service) DeleteNote(ctx context.Context, date string) error {
	if err := ValidateKey(date); err != nil {
		return err
	}
	if err := s.notes.Delete(ctx, date); err != nil {
		return err
	}

	removed, err := s.reminders.Delete(ctx, date)
	if err != nil {
		s.logger.Warn("reminder cleanup failed after note delete", "date", date, "error", err)
		return nil
	}
	if removed {
		s.logger.Debug("removed reminder of deleted note", "date", date)
	}
	return nil
}

// NotesForMonth lists the dates of notes in the given year and 0-based month.
// Order is storage order.
func (s *Service) NotesForMonth(ctx context.Context, year, month0 int) ([]string, error) {
	prefix, err := MonthPrefix(year, month0)
	if err != nil {
		return nil, err
	}
	return s.notes.List(ctx, prefix)
}

// NoteTitle returns the derived title of the note, or "" if there is none.
func (s *Service) NoteTitle(ctx context.Context, date string) (string, error) {
	content, err := s.LoadNote(ctx, date)
	if err != nil {
		return "", err
	}
	return Title(content), nil
}

// AllNotes dumps every note for client-side search.
func (s *Service) AllNotes(ctx context.Context) ([]Note, error) {
	return s.notes.All(ctx)
}

// --- Reminders ---

// SetReminder schedules a review of the note delayInDays from today.
// Setting again replaces the previous review date.
func (s *Service) SetReminder(ctx context.Context, noteDate string, delayInDays int) (Ack, error) {
	if err := ValidateKey(noteDate); err != nil {
		return Ack{}, err
	}
	reviewDate := AddDays(s.clock(), delayInDays)
	if err := s.reminders.Set(ctx, noteDate, reviewDate); err != nil {
		return Ack{}, err
	}
	s.logger.Debug("reminder set", "note", noteDate, "review", reviewDate)
	return Ack{Success: true, Message: ReminderSetMessage}, nil
}

// DeleteReminder removes the reminder for noteDate, if any.
func (s *Service) DeleteReminder(ctx context.Context, noteDate string) error {
	if err := ValidateKey(noteDate); err != nil {
		return err
	}
	_, err := s.reminders.Delete(ctx, noteDate)
	return err
}

// RemindersForMonth returns the reminders whose note falls in the given year
// and 0-based month, keyed by note date.
func (s *Service) RemindersForMonth(ctx context.Context, year, month0 int) (map[string]string, error) {
	prefix, err := MonthPrefix(year, month0)
	if err != nil {
		return nil, err
	}
	all, err := s.reminders.All(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make(map[string]string)
	for noteDate, reviewDate := range all {
		if strings.HasPrefix(noteDate, prefix) {
			filtered[noteDate] = reviewDate
		}
	}
	return filtered, nil
}

// DueReminders returns every reminder due today or earlier, with the title of
// its note. Results are ordered by review date, then note date.
func (s *Service) DueReminders(ctx context.Context) ([]DueReminder, error) {
	all, err := s.reminders.All(ctx)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	due := make([]DueReminder, 0)
	for noteDate, reviewDate := range all {
		if !IsDue(reviewDate, today) {
			continue
		}
		due = append(due, DueReminder{
			NoteDate:   noteDate,
			ReviewDate: reviewDate,
			Title:      s.dueTitle(ctx, noteDate),
		})
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].ReviewDate != due[j].ReviewDate {
			return due[i].ReviewDate < due[j].ReviewDate
		}
		return due[i].NoteDate < due[j].NoteDate
	})
	return due, nil
}

func (s *Service) dueTitle(ctx context.Context, noteDate string) string {
	content, err := s.LoadNote(ctx, noteDate)
	if err != nil {
		if !errors.Is(err, ErrInvalidKey) {
			s.logger.Warn("failed to load note for due reminder", "date", noteDate, "error", err)
		}
		return UntitledNote
	}
	if title := Title(content); title != "" {
		return title
	}
	return UntitledNote
}

// --- Images ---

// SavePastedImage stores an image and returns its generated file name.
// On failure the name is "" and the error is logged and returned.
func (s *Service) SavePastedImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	name, err := s.images.Save(ctx, data, mimeType)
	if err != nil {
		s.logger.Error("failed to save image", "mime", mimeType, "error", err)
		return "", err
	}
	return name, nil
}

// ImagesPath returns the directory holding pasted images.
func (s *Service) ImagesPath() string {
	return s.images.Root()
}

// ImagePath resolves an image file name to its location on disk.
func (s *Service) ImagePath(name string) string {
	return s.images.Path(name)
}

// --- Side channels ---

// Capture forwards externally captured text to the consumer of Captures.
func (s *Service) Capture(text string) bool {
	ok := s.captures.Publish(text)
	if !ok && text != "" {
		s.logger.Warn("captured text dropped", "length", len(text))
	}
	return ok
}

// Captures returns the stream of captured text.
func (s *Service) Captures() <-chan CaptureEvent {
	return s.captures.Events()
}

// Watch observes changes in the note repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.notes.(Watchable)
	if !ok {
		return nil, errors.New("note repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// Close releases the capture stream.
func (s *Service) Close() error {
	s.captures.Close()
	return nil
}
