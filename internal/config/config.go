// Package config loads process configuration from the environment, with a
// .env file as a development convenience.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken  string   `env:"DISCORD_TOKEN,required,notEmpty"`
	CommandPrefix string   `env:"COMMAND_PREFIX" envDefault:"!"`
	ManagerRoles  []string `env:"MANAGER_ROLES" envSeparator:","`
	DeveloperID   string   `env:"DEVELOPER_ID"`
	StoragePath   string   `env:"STORAGE_PATH" envDefault:"datastore.json"`
	LogPath       string   `env:"LOG_PATH" envDefault:"logs/herald.log"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
}

// New reads the .env file if present and parses the environment.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
