package bot

import (
	"github.com/bwmarrin/discordgo"

	"discord-calendar-bot/internal/models"
)

// commandDefinitions declares the slash-command surface. The handler
// table in New must cover every leaf here; RegisterCommands checks that
// at startup.
func commandDefinitions() []*discordgo.ApplicationCommand {
	eventTypeChoices := make([]*discordgo.ApplicationCommandOptionChoice, len(models.EventTypes))
	for i, t := range models.EventTypes {
		eventTypeChoices[i] = &discordgo.ApplicationCommandOptionChoice{Name: t, Value: t}
	}

	eventFieldOptions := func(required bool) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "title",
				Description: "Event title (up to 100 characters)",
				Required:    required,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "date",
				Description: "Event date, DD.MM.YYYY",
				Required:    required,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "type",
				Description: "Event type",
				Choices:     eventTypeChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Extra note shown with the event",
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "Role the event applies to",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Event time, HH:MM",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "location",
				Description: "Where the event takes place",
			},
		}
	}

	queryOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "query",
		Description: "Event id (##42), date (DD.MM.YYYY) or part of the title/message",
		Required:    true,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "calendar",
			Description: "Guild event calendar",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add an event",
					Options:     eventFieldOptions(true),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit an event; only the fields you pass change",
					Options:     append([]*discordgo.ApplicationCommandOption{queryOption}, eventFieldOptions(false)...),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove an event",
					Options:     []*discordgo.ApplicationCommandOption{queryOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "show",
					Description: "Show events",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "day",
							Description: "Show one day's events",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "date",
									Description: "Day to show, DD.MM.YYYY",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "two_columns",
									Description: "Lay the events out in two columns",
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "byid",
							Description: "Show one event by its id",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "event_id",
									Description: "The event id",
									Required:    true,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "week",
							Description: "Show a week's events",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "date",
									Description: "First day of the week, DD.MM.YYYY",
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "week",
									Description: "ISO week number of the current year",
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "all",
							Description: "Show every upcoming event",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "include_old",
									Description: "Include past events",
								},
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "show_id",
									Description: "Show event ids",
								},
							},
						},
					},
				},
			},
		},
		{
			Name:        "config",
			Description: "Show or change this guild's calendar channels",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "events_channel",
					Description: "Channel for the weekly digest",
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "logging_channel",
					Description: "Channel for bot logs",
				},
			},
		},
	}
}
