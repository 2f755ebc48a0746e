package game

import (
	"fmt"
	"time"

	"wikiguess/internal/models"
)

// DateString formats a time as the YYYY-MM-DD key for its UTC calendar date
func DateString(t time.Time) string {
	return t.UTC().Format(models.DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into its UTC midnight
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// PuzzleNumber returns the ordinal of a puzzle date relative to the epoch
// (first puzzle) date, with the epoch itself being puzzle #1. Both dates are
// compared at UTC midnight so wall-clock time and DST cannot shift the count.
func PuzzleNumber(epoch, date string) (int, error) {
	start, err := ParseDate(epoch)
	if err != nil {
		return 0, err
	}
	target, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	days := int(target.Sub(start).Hours() / 24)
	return days + 1, nil
}

// PreviousDate returns the YYYY-MM-DD string for the calendar day before the
// given date. Used by the streak logic.
func PreviousDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return DateString(t.AddDate(0, 0, -1)), nil
}

// NextPuzzleIn returns how long until the next puzzle unlocks at UTC
// midnight. Purely cosmetic countdown data.
func NextPuzzleIn(now time.Time) time.Duration {
	utc := now.UTC()
	midnight := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return midnight.Sub(utc)
}
