package intake

import (
	"fmt"
	"time"
)

type Config struct {
	BotName  string `mapstructure:"bot_name"`
	BotAlias string `mapstructure:"bot_alias"`
	UserID   string `mapstructure:"user_id"`
	Timezone string `mapstructure:"timezone"`
}

func DefaultConfig() *Config {
	return &Config{
		BotAlias: "prod",
		Timezone: "America/New_York",
	}
}

func (c *Config) Validate() error {
	if c.BotName == "" {
		return fmt.Errorf("bot_name is required")
	}
	if c.BotAlias == "" {
		return fmt.Errorf("bot_alias is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured reference time zone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
