package dialog

import (
	"fmt"
	"time"
)

type Config struct {
	BookingIntent string `mapstructure:"booking_intent"`
	Timezone      string `mapstructure:"timezone"`
	QueueURL      string `mapstructure:"queue_url"`
}

func DefaultConfig() *Config {
	return &Config{
		BookingIntent: "MakeAppointment",
		Timezone:      "America/New_York",
	}
}

func (c *Config) Validate() error {
	if c.BookingIntent == "" {
		return fmt.Errorf("booking_intent is required")
	}
	if c.QueueURL == "" {
		return fmt.Errorf("queue_url is required")
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
