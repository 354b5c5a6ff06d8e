package bot

import (
	"time"
)

// The daily post fires at a fixed wall-clock time in one reference zone,
// independent of any guild's configured timezone.
const (
	referenceTimezone = "US/Pacific"
	triggerHour       = 10
)

// NextTrigger computes the next posting instant given the current time in
// the reference timezone: today's 10:00 if that is still ahead, otherwise
// tomorrow's.
func NextTrigger(now time.Time) time.Time {
	trigger := time.Date(now.Year(), now.Month(), now.Day(), triggerHour, 0, 0, 0, now.Location())
	if !now.Before(trigger) {
		trigger = trigger.AddDate(0, 0, 1)
	}

	return trigger
}

// runDailyReportJob sleeps until the next 10 AM Pacific, posts the report to
// every configured guild, and repeats until shutdown. The absolute trigger
// instant is recomputed from the wall clock on every iteration, so the loop
// cannot drift.
func (b *Bot) runDailyReportJob() {
	pacific, err := time.LoadLocation(referenceTimezone)
	if err != nil {
		b.log.Error().Err(err).Msg("Error loading reference timezone, daily reports disabled")
		return
	}

	for {
		next := NextTrigger(b.now().In(pacific))
		b.log.Info().Time("next_post", next).Msg("Daily report scheduled")

		timer := time.NewTimer(next.Sub(b.now()))
		select {
		case <-b.ctx.Done():
			timer.Stop()
			b.log.Info().Msg("Stopping daily report job")
			return
		case <-timer.C:
		}

		b.PublishDailyReport(next)
	}
}

// PublishDailyReport fetches the report date's games once and fans the
// formatted report out to every guild with a sports channel. A failure for
// one guild never blocks delivery to the rest.
func (b *Bot) PublishDailyReport(date time.Time) {
	games, lineScores, err := b.provider.GamesForDate(date)
	if err != nil {
		b.log.Error().Err(err).Msg("Error fetching games, skipping today's report")
		return
	}

	guilds := b.store.Guilds()
	b.log.Info().Int("guilds", len(guilds)).Msg("Publishing daily report")

	for _, guild := range guilds {
		if guild.ChannelID == "" {
			continue
		}

		records, err := b.provider.TeamRecords()
		if err != nil {
			b.log.Error().Err(err).Str("guild_id", guild.GuildID).Msg("Error fetching team records")
			continue
		}

		loc := b.location(guild.GuildID)
		report := FormatReport(games, lineScores, records, loc, b.now().In(loc))

		if err := b.send(guild.ChannelID, report); err != nil {
			b.log.Error().Err(err).Str("guild_id", guild.GuildID).Msg("Error sending daily report")
		}
	}
}
