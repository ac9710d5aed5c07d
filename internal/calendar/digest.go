package calendar

import (
	"context"
	"time"

	"discord-calendar-bot/internal/models"
	"discord-calendar-bot/internal/store"
)

// DayBucket groups a day's events for display. Events keep their (date,
// time) order from the store.
type DayBucket struct {
	Date   time.Time
	Events []models.Event
}

// BuildDayBuckets splits events into one bucket per distinct date, in
// (date, time) order with all-day entries first.
func BuildDayBuckets(events []models.Event) []DayBucket {
	SortEvents(events)
	var buckets []DayBucket
	for _, event := range events {
		if n := len(buckets); n > 0 && buckets[n-1].Date.Equal(event.Date) {
			buckets[n-1].Events = append(buckets[n-1].Events, event)
			continue
		}
		buckets = append(buckets, DayBucket{Date: event.Date, Events: []models.Event{event}})
	}
	return buckets
}

// WeekDigest fetches the guild's events inside the window and buckets
// them by day. An empty week yields an empty bucket list; the caller
// renders the placeholder.
func WeekDigest(ctx context.Context, events *store.EventStore, guildID int64, window Window) ([]DayBucket, error) {
	matched, err := events.InWindow(ctx, guildID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	return BuildDayBuckets(matched), nil
}

// CapBuckets limits a bucket list to max entries. The number of elided
// buckets is returned so the caller can render a single "+N more" line
// instead of truncating mid-list.
func CapBuckets(buckets []DayBucket, max int) ([]DayBucket, int) {
	if len(buckets) <= max {
		return buckets, 0
	}
	return buckets[:max], len(buckets) - max
}
