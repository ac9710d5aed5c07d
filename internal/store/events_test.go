package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-calendar-bot/internal/database"
	"discord-calendar-bot/internal/models"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewMemory()
	require.NoError(t, err)
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEventCreateAndGet(t *testing.T) {
	events := NewEventStore(newTestDB(t))
	ctx := context.Background()

	event := &models.Event{Title: "Midterm", EventType: models.TypeExam, Date: day(2025, time.June, 15), GuildID: 1}
	require.NoError(t, events.Create(ctx, event))
	require.NotZero(t, event.ID)

	got, err := events.GetByID(ctx, event.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Midterm", got.Title)
	assert.True(t, got.AllDay())
}

func TestGetByIDIsGuildScoped(t *testing.T) {
	events := NewEventStore(newTestDB(t))
	ctx := context.Background()

	event := &models.Event{Title: "Secret", EventType: models.TypeOther, Date: day(2025, time.June, 15), GuildID: 2}
	require.NoError(t, events.Create(ctx, event))

	got, err := events.GetByID(ctx, event.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateByIDReportsRows(t *testing.T) {
	events := NewEventStore(newTestDB(t))
	ctx := context.Background()

	event := &models.Event{Title: "Old", EventType: models.TypeOther, Date: day(2025, time.June, 15), GuildID: 1}
	require.NoError(t, events.Create(ctx, event))

	rows, err := events.UpdateByID(ctx, event.ID, 1, map[string]any{"title": "New"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	got, err := events.GetByID(ctx, event.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)

	// Wrong guild touches nothing.
	rows, err = events.UpdateByID(ctx, event.ID, 99, map[string]any{"title": "Hijacked"})
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestDeleteByIDIsIdempotent(t *testing.T) {
	events := NewEventStore(newTestDB(t))
	ctx := context.Background()

	event := &models.Event{Title: "Gone", EventType: models.TypeOther, Date: day(2025, time.June, 15), GuildID: 1}
	require.NoError(t, events.Create(ctx, event))

	rows, err := events.DeleteByID(ctx, event.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = events.DeleteByID(ctx, event.ID, 1)
	require.NoError(t, err)
	assert.Zero(t, rows, "second delete reports nothing removed, not an error")
}

func TestSearchTextMatchesTitleOrMessage(t *testing.T) {
	events := NewEventStore(newTestDB(t))
	ctx := context.Background()
	note := "bring CALCULATORS"

	require.NoError(t, events.Create(ctx, &models.Event{Title: "Math exam", EventType: models.TypeExam,
		Date: day(2025, time.June, 20), GuildID: 1}))
	require.NoError(t, events.Create(ctx, &models.Event{Title: "Physics", EventType: models.TypeExam,
		Message: &note, Date: day(2025, time.June, 18), GuildID: 1}))

	got, err := events.SearchText(ctx, 1, "calculators")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Physics", got[0].Title)

	got, err = events.SearchText(ctx, 1, "MATH")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Math exam", got[0].Title)
}

func TestAllFiltersPast(t *testing.T) {
	events := NewEventStore(newTestDB(t))
	ctx := context.Background()
	today := day(2025, time.June, 15)

	require.NoError(t, events.Create(ctx, &models.Event{Title: "past", EventType: models.TypeOther,
		Date: day(2025, time.June, 10), GuildID: 1}))
	require.NoError(t, events.Create(ctx, &models.Event{Title: "today", EventType: models.TypeOther,
		Date: today, GuildID: 1}))
	require.NoError(t, events.Create(ctx, &models.Event{Title: "future", EventType: models.TypeOther,
		Date: day(2025, time.June, 20), GuildID: 1}))

	got, err := events.All(ctx, 1, false, today)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].Title)

	got, err = events.All(ctx, 1, true, today)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSettingsGetOrCreateIsIdempotent(t *testing.T) {
	settings := NewSettingsStore(newTestDB(t))
	ctx := context.Background()

	first, err := settings.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, first.EventsChannelID)

	require.NoError(t, settings.Update(ctx, 42, map[string]any{"events_channel_id": int64(777)}))

	again, err := settings.GetOrCreate(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, again.EventsChannelID)
	assert.EqualValues(t, 777, *again.EventsChannelID)
}
