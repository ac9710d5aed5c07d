package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"discord-calendar-bot/internal/calendar"
	"discord-calendar-bot/internal/models"
	"discord-calendar-bot/internal/workflow"
)

// Embed colors, matching the palette of the previous deployment.
const (
	colorGreen   = 0x2ecc71
	colorRed     = 0xe74c3c
	colorOrange  = 0xe67e22
	colorBlurple = 0x5865f2
)

// choiceLabelMax is how much of a title fits on a choice button before it
// is truncated with an ellipsis.
const choiceLabelMax = 10

// maxRowComponents is Discord's limit on components per action row.
const maxRowComponents = 5

func simpleEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}
}

func (b *Bot) errorEmbed(titleKey, descKey string, args ...string) *discordgo.MessageEmbed {
	return simpleEmbed(b.tr.T(titleKey), b.tr.T(descKey, args...), colorRed)
}

func (b *Bot) successEmbed(titleKey, descKey string, args ...string) *discordgo.MessageEmbed {
	return simpleEmbed(b.tr.T(titleKey), b.tr.T(descKey, args...), colorGreen)
}

// eventUnix returns the event's moment as a unix timestamp for Discord's
// <t:...> markup. All-day events use the configured display hour.
func (b *Bot) eventUnix(event *models.Event) int64 {
	hour, minute := b.cfg.AllDayDisplayHour, 0
	if event.Time != nil {
		if t, err := time.Parse("15:04", *event.Time); err == nil {
			hour, minute = t.Hour(), t.Minute()
		}
	}
	d := event.Date
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC).Unix()
}

// eventWhen renders the event's date line: a full timestamp for timed
// events, a date-only one for all-day events.
func (b *Bot) eventWhen(event *models.Event) string {
	if event.Time != nil {
		return fmt.Sprintf("<t:%d:f>", b.eventUnix(event))
	}
	return fmt.Sprintf("<t:%d:D>", b.eventUnix(event))
}

// eventField renders one event as an embed field with its type, message,
// role and location lines.
func (b *Bot) eventField(event *models.Event) *discordgo.MessageEmbedField {
	var sb strings.Builder
	sb.WriteString(b.eventWhen(event) + "\n")
	sb.WriteString("📄 " + b.tr.T("type_"+event.EventType) + "\n")
	if event.Message != nil {
		sb.WriteString("💬 " + *event.Message + "\n")
	}
	if event.RoleID != nil {
		sb.WriteString("👥 " + b.tr.T("applies_to", "role", fmt.Sprintf("<@&%d>", *event.RoleID)) + "\n")
	}
	if event.Location != nil {
		sb.WriteString("📍 " + *event.Location + "\n")
	}
	return &discordgo.MessageEmbedField{
		Name:  "◻️ " + event.Title,
		Value: sb.String(),
	}
}

// dayField renders one day bucket as an embed field: the date as the
// name, one bullet line per event. All-day entries get no time suffix.
func (b *Bot) dayField(bucket calendar.DayBucket, showID bool) *discordgo.MessageEmbedField {
	weekday := b.tr.T("weekday_" + strings.ToLower(bucket.Date.Weekday().String()))
	lines := make([]string, 0, len(bucket.Events))
	for i := range bucket.Events {
		event := &bucket.Events[i]
		var line string
		if showID {
			line = fmt.Sprintf("• `#%d` - %s", event.ID, event.Title)
		} else {
			line = "• " + event.Title
		}
		if event.Time != nil {
			line += fmt.Sprintf(" <t:%d:t>", b.eventUnix(event))
		}
		lines = append(lines, line)
	}
	return &discordgo.MessageEmbedField{
		Name:   fmt.Sprintf("%s (%s)", bucket.Date.Format("02.01.2006"), weekday),
		Value:  strings.Join(lines, "\n"),
		Inline: true,
	}
}

// digestEmbed renders a bucket list, or the no-events placeholder when
// the list is empty.
func (b *Bot) digestEmbed(title string, buckets []calendar.DayBucket, showID bool, omitted int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{Title: title, Color: colorBlurple}
	if len(buckets) == 0 {
		embed.Description = b.tr.T("no_events")
		return embed
	}
	for _, bucket := range buckets {
		embed.Fields = append(embed.Fields, b.dayField(bucket, showID))
	}
	if omitted > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  b.tr.T("more_days", "count", fmt.Sprint(omitted)),
			Value: "​",
		})
	}
	return embed
}

// diffDescription renders the old→new lines of an edit confirmation,
// changed fields only.
func (b *Bot) diffDescription(event *models.Event, changes workflow.Changes) string {
	var sb strings.Builder
	sb.WriteString(b.tr.T("edit_confirm_intro", "title", event.Title) + "\n")
	for _, change := range changes.Diff(event) {
		sb.WriteString(fmt.Sprintf("%s: %s → %s\n", b.tr.T("field_"+change.Field), change.Old, change.New))
	}
	return sb.String()
}

// choiceLabel builds a candidate button label: index plus the title,
// truncated past choiceLabelMax runes.
func choiceLabel(index int, title string) string {
	runes := []rune(title)
	if len(runes) > choiceLabelMax {
		title = string(runes[:choiceLabelMax]) + "..."
	}
	return fmt.Sprintf("%d. %s", index, title)
}

// choiceComponents builds one button per candidate plus a cancel button,
// all carrying the prompt id so stale prompts are rejected on click.
// Buttons are spread over several action rows where needed; a full
// candidate set plus cancel does not fit in one.
func (b *Bot) choiceComponents(prompt *workflow.Prompt, candidates []models.Event) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(candidates)+1)
	for i := range candidates {
		buttons = append(buttons, discordgo.Button{
			Style:    discordgo.PrimaryButton,
			Label:    choiceLabel(i+1, candidates[i].Title),
			CustomID: fmt.Sprintf("cal_pick:%s:%d", prompt.ID, candidates[i].ID),
		})
	}
	buttons = append(buttons, discordgo.Button{
		Style:    discordgo.DangerButton,
		Label:    b.tr.T("cancel"),
		CustomID: "cal_cancel:" + prompt.ID,
	})

	var rows []discordgo.MessageComponent
	for len(buttons) > maxRowComponents {
		rows = append(rows, discordgo.ActionsRow{Components: buttons[:maxRowComponents]})
		buttons = buttons[maxRowComponents:]
	}
	return append(rows, discordgo.ActionsRow{Components: buttons})
}

// confirmComponents builds the confirm/cancel button pair for a proposed
// mutation.
func (b *Bot) confirmComponents(prompt *workflow.Prompt) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Style:    discordgo.SuccessButton,
			Label:    b.tr.T("confirm"),
			CustomID: "cal_confirm:" + prompt.ID,
		},
		discordgo.Button{
			Style:    discordgo.DangerButton,
			Label:    b.tr.T("cancel"),
			CustomID: "cal_cancel:" + prompt.ID,
		},
	}}}
}
