package bot

import (
	"fmt"
	"strings"

	"nba-tracker/internal/nba"
	"nba-tracker/internal/timezones"
)

const invalidTimezoneReply = "Invalid time zone. Please provide a valid time zone abbreviation (e.g., `ET`, `CST`) or full name (e.g., `America/New_York`)."

// incomingMessage is the part of a Discord message the dispatcher cares
// about. An empty GuildID means the message arrived as a DM.
type incomingMessage struct {
	GuildID   string
	ChannelID string
	Content   string
	IsAdmin   bool
}

// dispatch routes one inbound message and returns the reply for the
// originating channel. An empty reply means stay silent.
func (b *Bot) dispatch(msg incomingMessage) string {
	if msg.GuildID == "" {
		return "This bot only works in servers."
	}

	content := strings.ToLower(msg.Content)

	switch {
	case strings.HasPrefix(content, "!setchannel"):
		return b.handleSetChannel(msg)
	case strings.HasPrefix(content, "!settimezone"):
		return b.handleSetTimezone(msg)
	}

	// Everything below only works in the guild's designated sports channel;
	// messages elsewhere are ignored without a reply.
	channelID, ok := b.store.ReportChannel(msg.GuildID)
	if !ok || channelID != msg.ChannelID {
		return ""
	}

	if content == "!nba" {
		return b.handleReport(msg)
	}

	return ""
}

func (b *Bot) handleSetChannel(msg incomingMessage) string {
	if !msg.IsAdmin {
		return "You must be an administrator to set the sports channel."
	}

	b.store.SetReportChannel(msg.GuildID, msg.ChannelID)
	b.saveConfig()

	return "This channel has been set as the sports channel for daily NBA updates."
}

func (b *Bot) handleSetTimezone(msg incomingMessage) string {
	parts := strings.SplitN(msg.Content, " ", 2)
	if len(parts) < 2 {
		return invalidTimezoneReply
	}

	zone, err := timezones.Resolve(parts[1])
	if err != nil {
		return invalidTimezoneReply
	}

	b.store.SetTimezone(msg.GuildID, zone)
	b.saveConfig()

	return fmt.Sprintf("Time zone for this server has been set to `%s`.", zone)
}

func (b *Bot) handleReport(msg incomingMessage) string {
	loc := b.location(msg.GuildID)
	now := b.now().In(loc)

	// Yesterday's games stay interesting until mid-morning, so fetch the
	// previous day until 10 AM guild-local time.
	date := now
	if now.Hour() < 10 {
		date = now.AddDate(0, 0, -1)
	}

	games, scores, err := b.provider.GamesForDate(date)
	if err != nil {
		return b.fetchFailureReply(msg.GuildID, "Error fetching games", err)
	}

	records, err := b.provider.TeamRecords()
	if err != nil {
		return b.fetchFailureReply(msg.GuildID, "Error fetching team records", err)
	}

	return FormatReport(games, scores, records, loc, now)
}

// fetchFailureReply logs a failed provider fetch and returns the generic
// user-facing notice. Errors that didn't come from the provider client are
// flagged in the log; the user reply stays the same.
func (b *Bot) fetchFailureReply(guildID, logMsg string, err error) string {
	event := b.log.Error().Err(err).Str("guild_id", guildID)
	if !nba.IsFetchError(err) {
		event = event.Bool("unexpected", true)
	}
	event.Msg(logMsg)

	return "Couldn't fetch NBA games right now. Please try again later."
}
