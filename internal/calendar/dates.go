// Package calendar holds the display-independent core of the event
// calendar: date normalization, query resolution and digest bucketing.
package calendar

import (
	"errors"
	"strings"
	"time"
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

// Validation outcomes for user-supplied dates and times. Callers pick an
// error message with errors.Is instead of matching exception types.
var (
	ErrInvalidDate     = errors.New("invalid date, expected DD.MM.YYYY")
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM")
	ErrPastDate        = errors.New("date is in the past")
	ErrFarDate         = errors.New("date is more than a year away")
	ErrInvalidWeek     = errors.New("invalid week number")
	ErrAmbiguousWindow = errors.New("both date and week number given")
)

// ParseDate parses a user-supplied DD.MM.YYYY date, accepting "-" and "/"
// as separators. The result is a bare date at midnight UTC.
func ParseDate(input string) (time.Time, error) {
	normalized := strings.NewReplacer("-", ".", "/", ".").Replace(input)
	date, err := time.Parse(dateLayout, normalized)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// ParseTime parses a user-supplied HH:MM clock time and returns it in
// canonical form.
func ParseTime(input string) (string, error) {
	t, err := time.Parse(timeLayout, input)
	if err != nil {
		return "", ErrInvalidTime
	}
	return t.Format(timeLayout), nil
}

// Today truncates now to its calendar date at midnight UTC.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateCreationWindow checks that a new event's date is neither before
// today nor more than 365 days out. Both boundary dates are accepted.
// Only creation is validated against this window; edits are not.
func ValidateCreationWindow(date, now time.Time) error {
	today := Today(now)
	if date.Before(today) {
		return ErrPastDate
	}
	if date.After(today.AddDate(0, 0, 365)) {
		return ErrFarDate
	}
	return nil
}

// Window is a 7-day span of calendar dates, inclusive of both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

func windowFrom(start time.Time) Window {
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// WeekWindow computes the 7-day window anchored at an explicit date, an
// ISO week number of the current year (weeks start on Monday), or today
// at midnight when neither is given. Giving both is an error.
func WeekWindow(date *time.Time, week *int, now time.Time) (Window, error) {
	switch {
	case date != nil && week != nil:
		return Window{}, ErrAmbiguousWindow
	case date != nil:
		return windowFrom(Today(*date)), nil
	case week != nil:
		start, err := isoWeekStart(now.Year(), *week)
		if err != nil {
			return Window{}, err
		}
		return windowFrom(start), nil
	default:
		return windowFrom(Today(now)), nil
	}
}

// isoWeekStart returns the Monday of ISO week number week of the given
// year.
func isoWeekStart(year, week int) (time.Time, error) {
	if week < 1 || week > isoWeeksIn(year) {
		return time.Time{}, ErrInvalidWeek
	}
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)
	return week1Monday.AddDate(0, 0, (week-1)*7), nil
}

// isoWeeksIn returns 52 or 53 depending on the year's ISO calendar.
func isoWeeksIn(year int) int {
	_, weeks := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return weeks
}
