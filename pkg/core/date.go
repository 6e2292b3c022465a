package core

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the fixed-width, zero-padded key format for notes and reminders.
// Lexicographic order of keys in this layout matches chronological order.
const DateLayout = "2006-01-02"

// Clock returns the current time. Injected so tests can pin "today".
type Clock func() time.Time

// FormatDate renders t as a YYYY-MM-DD key in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays returns the calendar date n days after t (n may be negative).
// time.Date normalizes day overflow, so month and year boundaries roll over.
func AddDays(t time.Time, n int) string {
	y, m, d := t.Date()
	return FormatDate(time.Date(y, m, d+n, 0, 0, 0, 0, t.Location()))
}

// MonthPrefix builds the "YYYY-MM" key prefix for a 0-based month.
func MonthPrefix(year, month0 int) (string, error) {
	if month0 < 0 || month0 > 11 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonth, month0)
	}
	return fmt.Sprintf("%04d-%02d", year, month0+1), nil
}

// ValidateKey rejects keys that cannot name a file inside the store's directory.
// The YYYY-MM-DD format itself is not enforced.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
