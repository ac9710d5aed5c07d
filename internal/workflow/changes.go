package workflow

import (
	"fmt"

	"go.uber.org/zap"

	"discord-calendar-bot/internal/calendar"
	"discord-calendar-bot/internal/models"
)

// Changes carries the pending partial update of an edit prompt. Nil
// fields keep the stored value. Date and time travel as the raw user
// strings; they are parsed only when the edit is committed.
type Changes struct {
	Title     *string
	Message   *string
	EventType *string
	RoleID    *int64
	RawDate   *string
	RawTime   *string
	Location  *string
}

// Empty reports whether the edit would change nothing.
func (c Changes) Empty() bool {
	return c.Title == nil && c.Message == nil && c.EventType == nil &&
		c.RoleID == nil && c.RawDate == nil && c.RawTime == nil && c.Location == nil
}

// Columns merges the changes against the stored event into a column
// update map. An unparsable date or time keeps the stored value rather
// than failing the commit; that asymmetry with the add validation is
// inherited behaviour, so it is logged instead of silently swallowed.
func (c Changes) Columns(event *models.Event, logger *zap.Logger) map[string]any {
	fields := make(map[string]any)
	if c.Title != nil {
		fields["title"] = *c.Title
	}
	if c.Message != nil {
		fields["message"] = *c.Message
	}
	if c.EventType != nil {
		fields["event_type"] = *c.EventType
	}
	if c.RoleID != nil {
		fields["role_id"] = *c.RoleID
	}
	if c.Location != nil {
		fields["location"] = *c.Location
	}
	if c.RawDate != nil {
		if date, err := calendar.ParseDate(*c.RawDate); err == nil {
			fields["date"] = date
		} else {
			logger.Warn("edit kept stored date, new value unparsable",
				zap.Uint("event_id", event.ID), zap.String("input", *c.RawDate))
		}
	}
	if c.RawTime != nil {
		if clock, err := calendar.ParseTime(*c.RawTime); err == nil {
			fields["time"] = clock
		} else {
			logger.Warn("edit kept stored time, new value unparsable",
				zap.Uint("event_id", event.ID), zap.String("input", *c.RawTime))
		}
	}
	return fields
}

// FieldChange is one old→new pair for the confirmation diff.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// Diff lists the changed fields against the stored event, omitting
// untouched ones. The raw date/time strings are shown as supplied; the
// commit-time fallback is a separate concern.
func (c Changes) Diff(event *models.Event) []FieldChange {
	var diff []FieldChange
	if c.Title != nil {
		diff = append(diff, FieldChange{"title", event.Title, *c.Title})
	}
	if c.EventType != nil {
		diff = append(diff, FieldChange{"type", event.EventType, *c.EventType})
	}
	if c.Message != nil {
		diff = append(diff, FieldChange{"message", strOrEmpty(event.Message), *c.Message})
	}
	if c.RoleID != nil {
		old := ""
		if event.RoleID != nil {
			old = fmt.Sprintf("<@&%d>", *event.RoleID)
		}
		diff = append(diff, FieldChange{"role", old, fmt.Sprintf("<@&%d>", *c.RoleID)})
	}
	if c.RawDate != nil {
		diff = append(diff, FieldChange{"date", event.Date.Format("02.01.2006"), *c.RawDate})
	}
	if c.RawTime != nil {
		diff = append(diff, FieldChange{"time", strOrEmpty(event.Time), *c.RawTime})
	}
	if c.Location != nil {
		diff = append(diff, FieldChange{"location", strOrEmpty(event.Location), *c.Location})
	}
	return diff
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
