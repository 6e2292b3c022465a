package core

// UntitledNote is the title reported for due reminders whose note is missing or blank.
const UntitledNote = "Untitled Note"

// ReminderSetMessage is the acknowledgment text returned by SetReminder.
const ReminderSetMessage = "Reminder set!"

// DueReminder is a reminder whose review date has arrived, joined with its note's title.
type DueReminder struct {
	NoteDate   string `json:"noteDate"`
	ReviewDate string `json:"reviewDate"`
	Title      string `json:"title"`
}

// Ack acknowledges a mutation requested by the caller.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IsDue reports whether reviewDate is today or earlier.
// Both arguments are YYYY-MM-DD keys, so string order is date order.
func IsDue(reviewDate, today string) bool {
	return reviewDate <= today
}
