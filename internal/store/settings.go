package store

import (
	"context"
	"fmt"

	"discord-calendar-bot/internal/database"
	"discord-calendar-bot/internal/models"
)

// SettingsStore persists the per-guild configuration row.
type SettingsStore struct {
	db *database.DB
}

func NewSettingsStore(db *database.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// GetOrCreate returns the guild's settings, creating an empty row the
// first time the guild is seen. Safe to call repeatedly.
func (s *SettingsStore) GetOrCreate(ctx context.Context, guildID int64) (*models.GuildSettings, error) {
	settings := models.GuildSettings{GuildID: guildID}
	err := s.db.WithContext(ctx).
		FirstOrCreate(&settings, models.GuildSettings{GuildID: guildID}).Error
	if err != nil {
		return nil, fmt.Errorf("guild settings %d: %w", guildID, err)
	}
	return &settings, nil
}

// Update applies the given column values to the guild's settings row.
func (s *SettingsStore) Update(ctx context.Context, guildID int64, fields map[string]any) error {
	err := s.db.WithContext(ctx).
		Model(&models.GuildSettings{}).
		Where("guild_id = ?", guildID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("update guild settings %d: %w", guildID, err)
	}
	return nil
}
