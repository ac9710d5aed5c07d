// internal/bot/handler.go
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"discord-calendar-bot/internal/calendar"
	"discord-calendar-bot/internal/config"
	"discord-calendar-bot/internal/i18n"
	"discord-calendar-bot/internal/models"
	"discord-calendar-bot/internal/store"
	"discord-calendar-bot/internal/workflow"
)

const maxTitleLength = 100

type handlerFunc func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate)

// Bot wires the calendar core to Discord: it owns the command table, the
// component dispatch and the embed rendering around the resolver, the
// workflow engine and the stores.
type Bot struct {
	session  *discordgo.Session
	cfg      *config.Config
	events   *store.EventStore
	settings *store.SettingsStore
	resolver *calendar.Resolver
	engine   *workflow.Engine
	tr       *i18n.Translator
	logger   *zap.Logger
	now      func() time.Time

	handlers map[string]handlerFunc
}

func New(cfg *config.Config, events *store.EventStore, settings *store.SettingsStore,
	resolver *calendar.Resolver, engine *workflow.Engine, tr *i18n.Translator, logger *zap.Logger) *Bot {
	b := &Bot{
		cfg:      cfg,
		events:   events,
		settings: settings,
		resolver: resolver,
		engine:   engine,
		tr:       tr,
		logger:   logger,
		now:      time.Now,
	}
	b.handlers = map[string]handlerFunc{
		"calendar/add":       b.handleAdd,
		"calendar/edit":      b.handleEdit,
		"calendar/remove":    b.handleRemove,
		"calendar/show/day":  b.handleShowDay,
		"calendar/show/byid": b.handleShowByID,
		"calendar/show/week": b.handleShowWeek,
		"calendar/show/all":  b.handleShowAll,
		"config":             b.handleConfig,
	}
	return b
}

// SetSession attaches the bot to a Discord session.
func (b *Bot) SetSession(s *discordgo.Session) {
	b.session = s
	s.AddHandler(b.handleInteraction)
	s.AddHandler(b.onGuildCreate)
}

// RegisterCommands registers the slash commands, after verifying that
// every command leaf has a handler in the table. A mismatch is a
// programming error and fails startup.
func (b *Bot) RegisterCommands() error {
	defs := commandDefinitions()
	for _, def := range defs {
		for _, path := range leafPaths(def) {
			if _, ok := b.handlers[path]; !ok {
				return fmt.Errorf("no handler for command %q", path)
			}
		}
	}
	for _, def := range defs {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", def); err != nil {
			return fmt.Errorf("create command %q: %w", def.Name, err)
		}
	}
	b.logger.Info("slash commands registered", zap.Int("count", len(defs)))
	return nil
}

// leafPaths lists the invocable paths of a command definition, e.g.
// "calendar/show/day".
func leafPaths(def *discordgo.ApplicationCommand) []string {
	var paths []string
	var walk func(prefix string, opts []*discordgo.ApplicationCommandOption) bool
	walk = func(prefix string, opts []*discordgo.ApplicationCommandOption) bool {
		found := false
		for _, opt := range opts {
			switch opt.Type {
			case discordgo.ApplicationCommandOptionSubCommand:
				paths = append(paths, prefix+"/"+opt.Name)
				found = true
			case discordgo.ApplicationCommandOptionSubCommandGroup:
				walk(prefix+"/"+opt.Name, opt.Options)
				found = true
			}
		}
		return found
	}
	if !walk(def.Name, def.Options) {
		paths = append(paths, def.Name)
	}
	return paths
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		path, _ := commandPath(i.ApplicationCommandData())
		handler, ok := b.handlers[path]
		if !ok {
			b.logger.Warn("unknown command", zap.String("path", path))
			return
		}
		b.logger.Debug("command", zap.String("path", path), zap.String("guild", i.GuildID))
		handler(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(ctx, s, i)
	}
}

// commandPath flattens subcommand nesting into a slash-joined path and
// returns the leaf's options.
func commandPath(data discordgo.ApplicationCommandInteractionData) (string, []*discordgo.ApplicationCommandInteractionDataOption) {
	path := data.Name
	opts := data.Options
	for len(opts) == 1 {
		t := opts[0].Type
		if t != discordgo.ApplicationCommandOptionSubCommand && t != discordgo.ApplicationCommandOptionSubCommandGroup {
			break
		}
		path += "/" + opts[0].Name
		opts = opts[0].Options
	}
	return path, opts
}

func leafOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	_, opts := commandPath(i.ApplicationCommandData())
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// authorized reports whether the acting member may manage events.
func authorized(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionManageEvents != 0
}

func guildID(i *discordgo.InteractionCreate) int64 {
	id, _ := strconv.ParseInt(i.GuildID, 10, 64)
	return id
}

// respond answers the interaction, falling back to a followup message
// when the initial response is already consumed, so error reporting
// always completes.
func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		return
	}
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
		Flags:      data.Flags,
	})
	if err != nil {
		b.logger.Error("interaction response failed", zap.Error(err))
	}
}

// updateMessage replaces the message the component lives on, clearing or
// swapping its buttons.
func (b *Bot) updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		b.logger.Error("interaction update failed", zap.Error(err))
	}
}

func (b *Bot) respondStoreFailure(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	b.logger.Error("store operation failed", zap.Error(err))
	b.respond(s, i, b.errorEmbed("failure_title", "generic_failure"), nil, true)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	id, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		return
	}
	if _, err := b.settings.GetOrCreate(context.Background(), id); err != nil {
		b.logger.Error("guild settings bootstrap failed", zap.Int64("guild", id), zap.Error(err))
	}
}

// region add

func (b *Bot) handleAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	title := opts["title"].StringValue()
	rawDate := opts["date"].StringValue()

	var errKey string
	date, err := calendar.ParseDate(rawDate)
	if err != nil {
		errKey = "add_failure_invaliddate"
	} else {
		switch calendar.ValidateCreationWindow(date, b.now()) {
		case calendar.ErrPastDate:
			errKey = "add_failure_pastdate"
		case calendar.ErrFarDate:
			errKey = "add_failure_fardate"
		}
	}

	var clock *string
	if opt, ok := opts["time"]; ok {
		parsed, timeErr := calendar.ParseTime(opt.StringValue())
		if timeErr != nil {
			if errKey == "" {
				errKey = "add_failure_invalidtime"
			}
		} else {
			clock = &parsed
		}
	}
	if errKey == "" && utf8.RuneCountInString(title) > maxTitleLength {
		errKey = "add_failure_toolongtitle"
	}
	if errKey != "" {
		b.respond(s, i, b.errorEmbed("add_failure_title", errKey), nil, true)
		return
	}

	event := &models.Event{
		Title:     title,
		EventType: models.TypeOther,
		Date:      date,
		Time:      clock,
		GuildID:   guildID(i),
	}
	if opt, ok := opts["type"]; ok {
		// The option declares choices, but a stale client can still send
		// anything.
		if t := opt.StringValue(); models.ValidEventType(t) {
			event.EventType = t
		}
	}
	if opt, ok := opts["message"]; ok {
		msg := opt.StringValue()
		event.Message = &msg
	}
	if opt, ok := opts["role"]; ok {
		if roleID, parseErr := strconv.ParseInt(opt.RoleValue(nil, "").ID, 10, 64); parseErr == nil {
			event.RoleID = &roleID
		}
	}
	if opt, ok := opts["location"]; ok {
		loc := opt.StringValue()
		event.Location = &loc
	}

	if err := b.events.Create(ctx, event); err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	b.respond(s, i, b.successEmbed("add_success_title", "add_success_message",
		"title", event.Title, "event_id", fmt.Sprint(event.ID)), nil, true)
}

// endregion
// region edit / remove

func (b *Bot) handleEdit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	changes := changesFromOptions(opts)
	b.startMutation(ctx, s, i, workflow.ActionEdit, opts["query"].StringValue(), changes)
}

func (b *Bot) handleRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	b.startMutation(ctx, s, i, workflow.ActionRemove, opts["query"].StringValue(), workflow.Changes{})
}

func changesFromOptions(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) workflow.Changes {
	var changes workflow.Changes
	strPtr := func(name string) *string {
		if opt, ok := opts[name]; ok {
			v := opt.StringValue()
			return &v
		}
		return nil
	}
	changes.Title = strPtr("title")
	changes.EventType = strPtr("type")
	changes.Message = strPtr("message")
	changes.RawDate = strPtr("date")
	changes.RawTime = strPtr("time")
	changes.Location = strPtr("location")
	if opt, ok := opts["role"]; ok {
		if roleID, err := strconv.ParseInt(opt.RoleValue(nil, "").ID, 10, 64); err == nil {
			changes.RoleID = &roleID
		}
	}
	return changes
}

// startMutation resolves the query and opens the matching prompt:
// a confirmation for a single hit, a choice for several.
func (b *Bot) startMutation(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, action workflow.Action, query string, changes workflow.Changes) {
	if !authorized(i) {
		b.respond(s, i, b.errorEmbed("failure_title", "missing_permissions"), nil, true)
		return
	}
	gid := guildID(i)
	resolution, err := b.resolver.Resolve(ctx, query, gid)
	if err == calendar.ErrInvalidID {
		b.respond(s, i, b.errorEmbed(failureTitle(action), "failure_invalidid"), nil, true)
		return
	}
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}

	switch resolution.Kind {
	case calendar.NotFound:
		b.respond(s, i, b.errorEmbed(failureTitle(action), "failure_notfound"), nil, true)
	case calendar.TooMany:
		b.respond(s, i, b.errorEmbed(failureTitle(action), "failure_toomany"), nil, true)
	case calendar.Single:
		prompt := b.engine.Propose(gid, action, resolution.Event.ID, changes)
		b.respond(s, i, b.confirmEmbed(action, resolution.Event, changes), b.confirmComponents(prompt), false)
	case calendar.Ambiguous:
		ids := make([]uint, len(resolution.Candidates))
		for idx := range resolution.Candidates {
			ids[idx] = resolution.Candidates[idx].ID
		}
		prompt := b.engine.ProposeChoice(gid, action, ids, changes)
		embed := &discordgo.MessageEmbed{
			Title:       b.tr.T(chooseTitle(action)),
			Description: b.tr.T("choose_description"),
			Color:       colorBlurple,
		}
		for idx := range resolution.Candidates {
			candidate := &resolution.Candidates[idx]
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("%d. %s", idx+1, candidate.Title),
				Value: b.eventWhen(candidate),
			})
		}
		b.respond(s, i, embed, b.choiceComponents(prompt, resolution.Candidates), false)
	}
}

func failureTitle(action workflow.Action) string {
	if action == workflow.ActionRemove {
		return "remove_failure_title"
	}
	return "edit_failure_title"
}

func chooseTitle(action workflow.Action) string {
	if action == workflow.ActionRemove {
		return "remove_choose_title"
	}
	return "edit_choose_title"
}

// confirmEmbed describes the net effect of the pending mutation: a field
// diff for an edit, the full event for a removal.
func (b *Bot) confirmEmbed(action workflow.Action, event *models.Event, changes workflow.Changes) *discordgo.MessageEmbed {
	if action == workflow.ActionRemove {
		embed := simpleEmbed(b.tr.T("remove_confirm_title"), b.tr.T("remove_confirm_description"), colorOrange)
		embed.Fields = []*discordgo.MessageEmbedField{b.eventField(event)}
		return embed
	}
	return simpleEmbed(b.tr.T("edit_confirm_title"), b.diffDescription(event, changes), colorOrange)
}

// endregion
// region components

func (b *Bot) handleComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	switch parts[0] {
	case "cal_pick":
		if len(parts) == 3 {
			b.handlePick(ctx, s, i, parts[1], parts[2])
		}
	case "cal_confirm":
		if len(parts) == 2 {
			b.handleConfirm(ctx, s, i, parts[1])
		}
	case "cal_cancel":
		if len(parts) == 2 {
			b.handleCancel(s, i, parts[1])
		}
	}
}

func (b *Bot) handlePick(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, promptID, rawEventID string) {
	if !authorized(i) {
		b.respond(s, i, b.errorEmbed("failure_title", "missing_permissions"), nil, true)
		return
	}
	eventID, err := strconv.ParseUint(rawEventID, 10, 64)
	if err != nil {
		// Malformed custom id; answer like any dead prompt instead of
		// leaving the click hanging.
		b.respondWorkflowError(s, i, workflow.ErrStalePrompt)
		return
	}
	prompt, err := b.engine.Select(promptID, uint(eventID))
	if err != nil {
		b.respondWorkflowError(s, i, err)
		return
	}
	event, err := b.events.GetByID(ctx, prompt.EventID, prompt.GuildID)
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	if event == nil {
		// Deleted between resolution and the pick.
		b.updateMessage(s, i, b.errorEmbed(failureTitle(prompt.Action), "failure_notfound"), nil)
		return
	}
	b.updateMessage(s, i, b.confirmEmbed(prompt.Action, event, prompt.Changes), b.confirmComponents(prompt))
}

func (b *Bot) handleConfirm(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, promptID string) {
	prompt, err := b.engine.Confirm(promptID, authorized(i))
	if err != nil {
		b.respondWorkflowError(s, i, err)
		return
	}
	switch prompt.Action {
	case workflow.ActionEdit:
		b.commitEdit(ctx, s, i, prompt)
	case workflow.ActionRemove:
		b.commitRemove(ctx, s, i, prompt)
	}
}

func (b *Bot) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate, promptID string) {
	if _, err := b.engine.Cancel(promptID, authorized(i)); err != nil {
		b.respondWorkflowError(s, i, err)
		return
	}
	b.updateMessage(s, i, simpleEmbed(b.tr.T("cancelled_title"), "", colorRed), nil)
}

// respondWorkflowError maps engine errors to user messages. Stale and
// unauthorized are reported distinctly; an unauthorized click leaves the
// prompt live, so the reply is ephemeral.
func (b *Bot) respondWorkflowError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	key := "stale_prompt"
	if err == workflow.ErrUnauthorized {
		key = "missing_permissions"
	}
	b.respond(s, i, b.errorEmbed("failure_title", key), nil, true)
}

func (b *Bot) commitEdit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, prompt *workflow.Prompt) {
	event, err := b.events.GetByID(ctx, prompt.EventID, prompt.GuildID)
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	if event == nil {
		b.updateMessage(s, i, b.errorEmbed("edit_failure_title", "failure_notfound"), nil)
		return
	}
	fields := prompt.Changes.Columns(event, b.logger)
	if len(fields) > 0 {
		rows, err := b.events.UpdateByID(ctx, prompt.EventID, prompt.GuildID, fields)
		if err != nil {
			b.respondStoreFailure(s, i, err)
			return
		}
		if rows == 0 {
			b.updateMessage(s, i, b.errorEmbed("edit_failure_title", "failure_notfound"), nil)
			return
		}
	}
	b.updateMessage(s, i, b.successEmbed("edit_success_title", "edit_success_message", "title", event.Title), nil)
}

func (b *Bot) commitRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, prompt *workflow.Prompt) {
	rows, err := b.events.DeleteByID(ctx, prompt.EventID, prompt.GuildID)
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	if rows == 0 {
		// Already gone; a normal outcome, not an error.
		b.updateMessage(s, i, b.errorEmbed("remove_failure_title", "failure_notfound"), nil)
		return
	}
	b.updateMessage(s, i, b.successEmbed("remove_success_title", "remove_success_message"), nil)
}

// endregion
// region show

func (b *Bot) handleShowDay(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	rawDate := opts["date"].StringValue()
	date, err := calendar.ParseDate(rawDate)
	if err != nil {
		b.respond(s, i, b.errorEmbed("show_day_failure_title", "add_failure_invaliddate"), nil, true)
		return
	}
	twoColumns := false
	if opt, ok := opts["two_columns"]; ok {
		twoColumns = opt.BoolValue()
	}

	events, err := b.events.ByDate(ctx, guildID(i), date)
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	calendar.SortEvents(events)

	embed := &discordgo.MessageEmbed{
		Title: b.tr.T("show_day_title", "date", date.Format("02.01.2006")),
		Color: colorBlurple,
	}
	if len(events) == 0 {
		embed.Description = b.tr.T("no_events")
		b.respond(s, i, embed, nil, false)
		return
	}
	for idx := range events {
		embed.Fields = append(embed.Fields, b.eventField(&events[idx]))
		if twoColumns && idx%2 == 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "​", Value: "​"})
		}
	}
	if twoColumns && len(events) > 6 {
		for _, field := range embed.Fields {
			field.Inline = true
		}
	}
	b.respond(s, i, embed, nil, false)
}

func (b *Bot) handleShowByID(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	eventID := opts["event_id"].IntValue()
	event, err := b.events.GetByID(ctx, uint(eventID), guildID(i))
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	if event == nil {
		b.respond(s, i, b.errorEmbed("show_byid_failure_title", "failure_notfound"), nil, true)
		return
	}
	embed := &discordgo.MessageEmbed{
		Title:  b.tr.T("show_byid_title", "event_id", fmt.Sprint(eventID)),
		Color:  colorBlurple,
		Fields: []*discordgo.MessageEmbedField{b.eventField(event)},
	}
	b.respond(s, i, embed, nil, false)
}

func (b *Bot) handleShowWeek(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	var datePtr *time.Time
	if opt, ok := opts["date"]; ok {
		date, err := calendar.ParseDate(opt.StringValue())
		if err != nil {
			b.respond(s, i, b.errorEmbed("show_week_failure_title", "week_failure_invaliddate"), nil, true)
			return
		}
		datePtr = &date
	}
	var weekPtr *int
	if opt, ok := opts["week"]; ok {
		week := int(opt.IntValue())
		weekPtr = &week
	}

	window, err := calendar.WeekWindow(datePtr, weekPtr, b.now())
	switch err {
	case nil:
	case calendar.ErrAmbiguousWindow:
		b.respond(s, i, b.errorEmbed("show_week_failure_title", "week_failure_bothdateandweek"), nil, true)
		return
	case calendar.ErrInvalidWeek:
		b.respond(s, i, b.errorEmbed("show_week_failure_title", "week_failure_invalidweek"), nil, true)
		return
	default:
		b.respondStoreFailure(s, i, err)
		return
	}

	buckets, err := calendar.WeekDigest(ctx, b.events, guildID(i), window)
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	title := b.tr.T("show_week_title", "date", window.Start.Format("02.01.2006"))
	b.respond(s, i, b.digestEmbed(title, buckets, false, 0), nil, false)
}

func (b *Bot) handleShowAll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	includePast := false
	if opt, ok := opts["include_old"]; ok {
		includePast = opt.BoolValue()
	}
	showID := false
	if opt, ok := opts["show_id"]; ok {
		showID = opt.BoolValue()
	}

	events, err := b.events.All(ctx, guildID(i), includePast, calendar.Today(b.now()))
	if err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	buckets, omitted := calendar.CapBuckets(calendar.BuildDayBuckets(events), b.cfg.ShowAllPageBreak)
	titleKey := "show_all_title"
	if includePast {
		titleKey = "show_all_with_old_title"
	}
	b.respond(s, i, b.digestEmbed(b.tr.T(titleKey), buckets, showID, omitted), nil, false)
}

// endregion
// region config

func (b *Bot) handleConfig(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := leafOptions(i)
	gid := guildID(i)

	if len(opts) == 0 {
		settings, err := b.settings.GetOrCreate(ctx, gid)
		if err != nil {
			b.respondStoreFailure(s, i, err)
			return
		}
		channelOrNone := func(id *int64) string {
			if id == nil {
				return b.tr.T("none")
			}
			return fmt.Sprintf("<#%d>", *id)
		}
		embed := &discordgo.MessageEmbed{
			Title: b.tr.T("config_title"),
			Color: colorBlurple,
			Fields: []*discordgo.MessageEmbedField{
				{Name: b.tr.T("config_events_channel"), Value: channelOrNone(settings.EventsChannelID)},
				{Name: b.tr.T("config_logging_channel"), Value: channelOrNone(settings.LoggingChannelID)},
			},
		}
		b.respond(s, i, embed, nil, false)
		return
	}

	if !authorized(i) {
		b.respond(s, i, b.errorEmbed("failure_title", "missing_permissions"), nil, true)
		return
	}
	if opt, ok := opts["events_channel"]; ok {
		b.setChannel(ctx, s, i, gid, opt.ChannelValue(nil).ID, "events_channel_id", "config_events_channel")
	}
	if opt, ok := opts["logging_channel"]; ok {
		b.setChannel(ctx, s, i, gid, opt.ChannelValue(nil).ID, "logging_channel_id", "config_logging_channel")
	}
}

// setChannel persists a channel setting after verifying the bot can send
// messages there.
func (b *Bot) setChannel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, gid int64, channelID, column, labelKey string) {
	perms, err := s.UserChannelPermissions(s.State.User.ID, channelID)
	if err != nil || perms&discordgo.PermissionSendMessages == 0 {
		b.respond(s, i, b.errorEmbed("config_failure_title", "config_channel_unwritable",
			"channel", "<#"+channelID+">"), nil, true)
		return
	}
	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return
	}
	if _, err := b.settings.GetOrCreate(ctx, gid); err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	if err := b.settings.Update(ctx, gid, map[string]any{column: id}); err != nil {
		b.respondStoreFailure(s, i, err)
		return
	}
	b.respond(s, i, b.successEmbed("config_success_title", "config_channel_set",
		"label", b.tr.T(labelKey), "channel", "<#"+channelID+">"), nil, true)
}

// endregion
