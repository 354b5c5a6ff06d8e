package main

import (
	"nba-tracker/internal/bot"
	"nba-tracker/internal/config"
	"nba-tracker/internal/logger"
)

func main() {
	log := logger.New("nba-tracker")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	b, err := bot.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	if err := b.Run(); err != nil {
		log.Fatal().Err(err).Msg("Bot stopped")
	}
}
