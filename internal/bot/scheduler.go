package bot

import (
	"context"
	"strconv"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"discord-calendar-bot/internal/calendar"
)

// StartScheduler wires the periodic jobs: the weekly digest broadcast
// (plus an optional fixed-interval trigger) and the expired-prompt sweep.
// The returned cron is already running.
func (b *Bot) StartScheduler() (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(b.cfg.DigestCron, b.BroadcastWeekDigest); err != nil {
		return nil, err
	}
	if b.cfg.DigestInterval != "" {
		if _, err := c.AddFunc("@every "+b.cfg.DigestInterval, b.BroadcastWeekDigest); err != nil {
			return nil, err
		}
	}
	if _, err := c.AddFunc("@every 1m", func() { b.engine.Sweep() }); err != nil {
		return nil, err
	}
	c.Start()
	b.logger.Info("digest scheduler started", zap.String("cron", b.cfg.DigestCron))
	return c, nil
}

// BroadcastWeekDigest sends the coming week's digest to every guild with
// a configured events channel. Guilds are handled one at a time; a guild
// with no channel, or one the bot cannot post to, is skipped without
// aborting the loop.
func (b *Bot) BroadcastWeekDigest() {
	ctx := context.Background()
	window := calendar.Window{Start: b.now(), End: b.now().AddDate(0, 0, 7)}

	for _, guild := range b.session.State.Guilds {
		gid, err := strconv.ParseInt(guild.ID, 10, 64)
		if err != nil {
			continue
		}
		settings, err := b.settings.GetOrCreate(ctx, gid)
		if err != nil {
			b.logger.Error("digest: guild settings", zap.Int64("guild", gid), zap.Error(err))
			continue
		}
		if settings.EventsChannelID == nil {
			continue
		}

		buckets, err := calendar.WeekDigest(ctx, b.events, gid, window)
		if err != nil {
			b.logger.Error("digest: events", zap.Int64("guild", gid), zap.Error(err))
			continue
		}
		title := b.tr.T("show_week_title", "date", window.Start.Format("02.01.2006"))
		embed := b.digestEmbed(title, buckets, false, 0)

		channelID := strconv.FormatInt(*settings.EventsChannelID, 10)
		if _, err := b.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
			b.logger.Warn("digest: send failed",
				zap.Int64("guild", gid), zap.String("channel", channelID), zap.Error(err))
			continue
		}
		b.logger.Debug("digest sent", zap.Int64("guild", gid),
			zap.Int("days", len(buckets)), zap.Time("week_start", window.Start))
	}
}
