package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"discord-calendar-bot/internal/database"
	"discord-calendar-bot/internal/models"
)

// EventStore persists calendar events. Every method takes the owning guild
// id; events are never visible or mutable across guilds.
type EventStore struct {
	db *database.DB
}

func NewEventStore(db *database.DB) *EventStore {
	return &EventStore{db: db}
}

// Create inserts the event and fills in its assigned id.
func (s *EventStore) Create(ctx context.Context, event *models.Event) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// GetByID returns the event with the given (id, guild) pair, or nil when
// no such row exists.
func (s *EventStore) GetByID(ctx context.Context, id uint, guildID int64) (*models.Event, error) {
	var event models.Event
	err := s.db.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}
	return &event, nil
}

// ByDate returns the guild's events on exactly date, ordered by time.
func (s *EventStore) ByDate(ctx context.Context, guildID int64, date time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("guild_id = ? AND date = ?", guildID, date).
		Order("time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("events by date: %w", err)
	}
	return events, nil
}

// SearchText returns the guild's events whose title or message contains
// the query, case-insensitively, ordered by date then time.
func (s *EventStore) SearchText(ctx context.Context, guildID int64, query string) ([]models.Event, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Where("(lower(title) LIKE ? OR lower(message) LIKE ?)", pattern, pattern).
		Order("date, time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return events, nil
}

// InWindow returns the guild's events with start <= date <= end, ordered
// by date then time.
func (s *EventStore) InWindow(ctx context.Context, guildID int64, start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("guild_id = ? AND date >= ? AND date <= ?", guildID, start, end).
		Order("date, time").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("events in window: %w", err)
	}
	return events, nil
}

// All returns every event of the guild ordered by date then time. Unless
// includePast is set, events dated before today are dropped.
func (s *EventStore) All(ctx context.Context, guildID int64, includePast bool, today time.Time) ([]models.Event, error) {
	q := s.db.WithContext(ctx).Where("guild_id = ?", guildID)
	if !includePast {
		q = q.Where("date >= ?", today)
	}
	var events []models.Event
	if err := q.Order("date, time").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("all events: %w", err)
	}
	return events, nil
}

// UpdateByID applies the given column values to the (id, guild) row and
// reports how many rows changed.
func (s *EventStore) UpdateByID(ctx context.Context, id uint, guildID int64, fields map[string]any) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ? AND guild_id = ?", id, guildID).
		Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("update event %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteByID removes the (id, guild) row and reports how many rows were
// deleted. Deleting an already-gone event is not an error.
func (s *EventStore) DeleteByID(ctx context.Context, id uint, guildID int64) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("id = ? AND guild_id = ?", id, guildID).
		Delete(&models.Event{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete event %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
