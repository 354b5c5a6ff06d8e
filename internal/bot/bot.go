package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"nba-tracker/internal/config"
	"nba-tracker/internal/nba"
	"nba-tracker/internal/store"
	"nba-tracker/internal/utils"
)

// discordMessageLimit is Discord's hard cap on message length; longer
// reports are split into chunks.
const discordMessageLimit = 2000

// StatsProvider is the slice of the NBA stats client the bot consumes.
type StatsProvider interface {
	GamesForDate(date time.Time) ([]nba.Game, []nba.LineScore, error)
	TeamRecords() (map[string]string, error)
}

// Bot struct represents the Discord bot and holds references to its dependencies
type Bot struct {
	session  *discordgo.Session
	store    *store.Store
	provider StatsProvider
	log      zerolog.Logger

	now  func() time.Time
	send func(channelID, content string) error

	ctx    context.Context
	cancel context.CancelFunc

	schedulerOnce sync.Once
}

// New creates and initializes a new Bot instance
func New(cfg *config.Config, log zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	ctx, cancel := context.WithCancel(context.Background())

	bot := &Bot{
		session:  session,
		store:    store.Load(cfg.ConfigFile),
		provider: nba.NewClient(),
		log:      log,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
	bot.send = bot.sendToChannel

	return bot, nil
}

// Run starts the bot and blocks until the process is interrupted.
func (b *Bot) Run() error {
	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleGuildCreate)
	b.session.AddHandler(b.handleMessageCreate)

	if err := b.session.Open(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop

	return b.Shutdown()
}

// handleReady reconciles every currently-joined guild into the config store
// and starts the daily report job. Ready fires again on reconnect, so the
// job is only started once.
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().Str("user", s.State.User.Username).Msg("Bot is now ready")

	changed := false
	for _, guild := range r.Guilds {
		if b.store.EnsureGuild(guild.ID) {
			changed = true
		}
	}
	if changed {
		b.saveConfig()
	}
	b.log.Info().Int("guilds", len(r.Guilds)).Msg("Initial guild setup complete")

	b.schedulerOnce.Do(func() {
		go b.runDailyReportJob()
	})
}

// handleGuildCreate registers a guild with default settings when the bot
// joins it.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if b.store.EnsureGuild(g.ID) {
		b.saveConfig()
		b.log.Info().Str("guild_id", g.ID).Str("guild_name", g.Name).Msg("Registered new guild")
	}
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Never react to our own messages.
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	if m.GuildID != "" && b.store.EnsureGuild(m.GuildID) {
		b.saveConfig()
	}

	reply := b.dispatch(incomingMessage{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		Content:   m.Content,
		IsAdmin:   m.GuildID != "" && isAdministrator(s, m),
	})
	if reply == "" {
		return
	}

	if err := b.send(m.ChannelID, reply); err != nil {
		b.log.Error().Err(err).Str("channel_id", m.ChannelID).Msg("Error sending reply")
	}
}

// isAdministrator reports whether the message author holds the administrator
// permission in the guild, as resolved by Discord.
func isAdministrator(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	perms, err := s.State.MessagePermissions(m.Message)
	if err != nil {
		perms, err = s.UserChannelPermissions(m.Author.ID, m.ChannelID)
		if err != nil {
			return false
		}
	}

	return perms&discordgo.PermissionAdministrator != 0
}

func (b *Bot) sendToChannel(channelID, content string) error {
	for _, chunk := range utils.ChunkMessage(content, discordMessageLimit) {
		if _, err := b.session.ChannelMessageSend(channelID, chunk); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bot) saveConfig() {
	if err := b.store.Save(); err != nil {
		b.log.Error().Err(err).Msg("Error saving config")
	}
}

// location loads the guild's configured timezone, falling back to the
// default zone for anything that no longer resolves.
func (b *Bot) location(guildID string) *time.Location {
	zone := b.store.Timezone(guildID)
	loc, err := time.LoadLocation(zone)
	if err == nil {
		return loc
	}

	b.log.Warn().Str("guild_id", guildID).Str("timezone", zone).Msg("Stored timezone no longer resolves")
	if loc, err = time.LoadLocation(store.DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Shutdown gracefully stops the bot and closes the Discord session.
func (b *Bot) Shutdown() error {
	b.log.Info().Msg("Shutting down...")
	b.cancel()

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("error closing Discord session: %w", err)
	}

	return nil
}
