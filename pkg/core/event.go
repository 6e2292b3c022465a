package core

import (
	"fmt"
	"time"
)

// EventType represents the type of change in the notes directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored note.
type Event struct {
	Type      EventType
	Date      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Date)
}

// CaptureEvent carries externally captured text (hotkey + clipboard) verbatim.
type CaptureEvent struct {
	Text string
	At   time.Time
}

func (e CaptureEvent) String() string {
	return e.Text
}
