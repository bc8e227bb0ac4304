package ingest

import (
	"fmt"
	"time"
)

type Config struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	PageSize   int           `mapstructure:"page_size"`
	MaxPerPair int           `mapstructure:"max_per_pair"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "https://api.yelp.com/v3/businesses/search",
		PageSize:   50,
		MaxPerPair: 1000,
		Timeout:    30 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive")
	}
	if c.MaxPerPair < c.PageSize {
		return fmt.Errorf("max_per_pair must be at least page_size")
	}
	return nil
}
