package bot

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"discord-calendar-bot/internal/calendar"
	"discord-calendar-bot/internal/config"
	"discord-calendar-bot/internal/i18n"
	"discord-calendar-bot/internal/models"
	"discord-calendar-bot/internal/workflow"
)

func newTestBot() *Bot {
	return New(config.Default(), nil, nil, nil, nil, i18n.Static(DefaultStrings()), zap.NewNop())
}

func TestCommandTableCoversEveryLeaf(t *testing.T) {
	b := newTestBot()
	for _, def := range commandDefinitions() {
		for _, path := range leafPaths(def) {
			assert.Contains(t, b.handlers, path)
		}
	}
}

func TestChoiceComponentsStayWithinRowLimit(t *testing.T) {
	b := newTestBot()
	candidates := make([]models.Event, 5)
	for i := range candidates {
		candidates[i] = models.Event{ID: uint(i + 1), Title: fmt.Sprintf("event %d", i+1)}
	}
	prompt := &workflow.Prompt{ID: "prompt-1"}

	rows := b.choiceComponents(prompt, candidates)
	require.Len(t, rows, 2, "five candidates plus cancel need a second row")

	total := 0
	for _, component := range rows {
		row, ok := component.(discordgo.ActionsRow)
		require.True(t, ok)
		assert.LessOrEqual(t, len(row.Components), 5)
		total += len(row.Components)
	}
	assert.Equal(t, 6, total)
}

func TestChoiceComponentCustomIDsParse(t *testing.T) {
	b := newTestBot()
	candidates := []models.Event{{ID: 42, Title: "Midterm"}}
	prompt := &workflow.Prompt{ID: "prompt-2"}

	rows := b.choiceComponents(prompt, candidates)
	require.Len(t, rows, 1)
	row := rows[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)

	pick := row.Components[0].(discordgo.Button)
	parts := strings.Split(pick.CustomID, ":")
	require.Len(t, parts, 3)
	assert.Equal(t, "cal_pick", parts[0])
	assert.Equal(t, "prompt-2", parts[1])
	eventID, err := strconv.ParseUint(parts[2], 10, 64)
	require.NoError(t, err)
	assert.EqualValues(t, 42, eventID)

	cancel := row.Components[1].(discordgo.Button)
	assert.Equal(t, "cal_cancel:prompt-2", cancel.CustomID)
}

func TestChoiceLabelTruncation(t *testing.T) {
	assert.Equal(t, "1. Short", choiceLabel(1, "Short"))
	assert.Equal(t, "2. Exactly 10", choiceLabel(2, "Exactly 10"))
	assert.Equal(t, "3. A very long...", choiceLabel(3, "A very long event title"))
}

func TestEventFieldRendering(t *testing.T) {
	b := newTestBot()
	clock := "10:30"
	location := "Room 101"
	event := &models.Event{
		ID:        1,
		Title:     "Midterm",
		EventType: models.TypeExam,
		Date:      time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Time:      &clock,
		Location:  &location,
		GuildID:   1,
	}

	field := b.eventField(event)
	assert.Equal(t, "◻️ Midterm", field.Name)
	assert.Contains(t, field.Value, "<t:")
	assert.Contains(t, field.Value, "Exam")
	assert.Contains(t, field.Value, "Room 101")
}

func TestEventWhenAllDayUsesDateFormat(t *testing.T) {
	b := newTestBot()
	event := &models.Event{Date: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)}
	assert.Contains(t, b.eventWhen(event), ":D>")

	clock := "08:00"
	event.Time = &clock
	assert.Contains(t, b.eventWhen(event), ":f>")
}

func TestDayFieldLines(t *testing.T) {
	b := newTestBot()
	clock := "10:30"
	bucket := calendar.DayBucket{
		Date: time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC),
		Events: []models.Event{
			{ID: 3, Title: "All day thing", Date: time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)},
			{ID: 4, Title: "Timed thing", Date: time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), Time: &clock},
		},
	}

	field := b.dayField(bucket, false)
	assert.Equal(t, "16.06.2025 (Monday)", field.Name)
	assert.Contains(t, field.Value, "• All day thing\n")
	assert.Contains(t, field.Value, "• Timed thing <t:")
	assert.NotContains(t, field.Value, "#3")

	field = b.dayField(bucket, true)
	assert.Contains(t, field.Value, "`#3` - All day thing")
}

func TestDigestEmbedEmpty(t *testing.T) {
	b := newTestBot()
	embed := b.digestEmbed("Week", nil, false, 0)
	assert.Equal(t, "No events.", embed.Description)
	assert.Empty(t, embed.Fields)
}

func TestDigestEmbedOmittedCount(t *testing.T) {
	b := newTestBot()
	buckets := []calendar.DayBucket{{
		Date:   time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC),
		Events: []models.Event{{ID: 1, Title: "x", Date: time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)}},
	}}
	embed := b.digestEmbed("All", buckets, false, 6)
	require.Len(t, embed.Fields, 2)
	assert.Contains(t, embed.Fields[1].Name, "6")
}

func TestDiffDescription(t *testing.T) {
	b := newTestBot()
	event := &models.Event{Title: "Midterm", EventType: models.TypeExam,
		Date: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)}
	title := "Final"
	changes := workflow.Changes{Title: &title}

	desc := b.diffDescription(event, changes)
	assert.Contains(t, desc, "Midterm")
	assert.Contains(t, desc, "Title: Midterm → Final")
	assert.NotContains(t, desc, "Date:")
}
