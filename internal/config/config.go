package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultConfigFile = "config.json"

type Config struct {
	DiscordToken string
	ConfigFile   string
}

func Load() (*Config, error) {
	// A missing .env is fine: in production the token comes straight from
	// the environment.
	_ = godotenv.Load()

	config := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		ConfigFile:   os.Getenv("CONFIG_FILE"),
	}

	if config.ConfigFile == "" {
		config.ConfigFile = defaultConfigFile
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("missing required environment variable: DISCORD_TOKEN")
	}

	return nil
}
