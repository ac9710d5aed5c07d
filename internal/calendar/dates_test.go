package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateSeparators(t *testing.T) {
	want := date(2025, time.June, 15)
	for _, input := range []string{"15.06.2025", "15-06-2025", "15/06/2025", "15.06-2025"} {
		got, err := ParseDate(input)
		require.NoError(t, err, input)
		assert.True(t, want.Equal(got), input)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2025.06.15", "32.01.2025", "15.13.2025"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	_, err = ParseTime("25:00")
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = ParseTime("noon")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestValidateCreationWindow(t *testing.T) {
	now := time.Date(2025, time.June, 15, 13, 37, 0, 0, time.UTC)

	assert.NoError(t, ValidateCreationWindow(date(2025, time.June, 15), now), "today is accepted")
	assert.NoError(t, ValidateCreationWindow(date(2026, time.June, 15), now), "+365 days is accepted")
	assert.ErrorIs(t, ValidateCreationWindow(date(2025, time.June, 14), now), ErrPastDate)
	assert.ErrorIs(t, ValidateCreationWindow(date(2026, time.June, 16), now), ErrFarDate)
}

func TestWeekWindowDefaultsToToday(t *testing.T) {
	now := time.Date(2025, time.June, 15, 13, 37, 0, 0, time.UTC)
	window, err := WeekWindow(nil, nil, now)
	require.NoError(t, err)
	assert.True(t, date(2025, time.June, 15).Equal(window.Start))
	assert.True(t, date(2025, time.June, 22).Equal(window.End))
}

func TestWeekWindowFromDate(t *testing.T) {
	anchor := date(2025, time.June, 20)
	window, err := WeekWindow(&anchor, nil, time.Now())
	require.NoError(t, err)
	assert.True(t, anchor.Equal(window.Start))
}

func TestWeekWindowFromISOWeek(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	week := 25
	window, err := WeekWindow(nil, &week, now)
	require.NoError(t, err)
	// ISO week 25 of 2025 starts Monday June 16th.
	assert.True(t, date(2025, time.June, 16).Equal(window.Start))

	y, w := window.Start.ISOWeek()
	assert.Equal(t, 2025, y)
	assert.Equal(t, 25, w)
	assert.Equal(t, time.Monday, window.Start.Weekday())
}

func TestWeekWindowErrors(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	anchor := date(2025, time.June, 20)
	week := 25

	_, err := WeekWindow(&anchor, &week, now)
	assert.ErrorIs(t, err, ErrAmbiguousWindow)

	for _, bad := range []int{0, -1, 54} {
		bad := bad
		_, err := WeekWindow(nil, &bad, now)
		assert.ErrorIs(t, err, ErrInvalidWeek, "week %d", bad)
	}
}

func TestWeekWindow53WeekYear(t *testing.T) {
	// 2026 has 53 ISO weeks; 2025 does not.
	now26 := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	week := 53
	_, err := WeekWindow(nil, &week, now26)
	assert.NoError(t, err)

	now25 := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	_, err = WeekWindow(nil, &week, now25)
	assert.ErrorIs(t, err, ErrInvalidWeek)
}
