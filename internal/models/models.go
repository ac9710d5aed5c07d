// internal/models/models.go
package models

import (
	"time"
)

// Event types recognised by the calendar. Anything created without an
// explicit type falls back to TypeOther.
const (
	TypeTest     = "test"
	TypeExam     = "exam"
	TypeDeadline = "deadline"
	TypeRetake   = "retake"
	TypeOther    = "other"
)

// EventTypes lists every valid event type, in command-option order.
var EventTypes = []string{TypeTest, TypeExam, TypeDeadline, TypeRetake, TypeOther}

// ValidEventType reports whether t is a recognised event type.
func ValidEventType(t string) bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Event is a single calendar entry. Date is a bare calendar date stored at
// midnight UTC; Time is an optional "HH:MM" string so that ordering by the
// column matches clock order. Nil Time means an all-day event.
type Event struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Message   *string
	EventType string `gorm:"not null;default:other"`
	RoleID    *int64
	Date      time.Time `gorm:"type:date;not null;index"`
	Time      *string
	GuildID   int64 `gorm:"not null;index"`
	Location  *string
	CreatedAt time.Time
}

// TableName keeps the table name from the previous deployment's schema.
func (Event) TableName() string { return "events" }

// AllDay reports whether the event has no clock time.
func (e *Event) AllDay() bool { return e.Time == nil }

// GuildSettings is the per-guild configuration row, created lazily the
// first time a guild is observed.
type GuildSettings struct {
	GuildID          int64 `gorm:"primaryKey"`
	EventsChannelID  *int64
	LoggingChannelID *int64
	UpdatedAt        time.Time
}

func (GuildSettings) TableName() string { return "guild_settings" }
