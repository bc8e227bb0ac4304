package fulfillment

import (
	"fmt"
)

type Config struct {
	QueueURL          string `mapstructure:"queue_url"`
	MaxMessages       int32  `mapstructure:"max_messages"`
	VisibilityTimeout int32  `mapstructure:"visibility_timeout"`
	WaitTime          int32  `mapstructure:"wait_time"`
	SampleSize        int    `mapstructure:"sample_size"`
	FromAddress       string `mapstructure:"from_address"`
	Subject           string `mapstructure:"subject"`
	SNSEnabled        bool   `mapstructure:"sns_enabled"`
	SNSTopicARN       string `mapstructure:"sns_topic_arn"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxMessages:       5,
		VisibilityTimeout: 10,
		WaitTime:          0,
		SampleSize:        5,
		Subject:           "Dining Suggestions",
	}
}

func (c *Config) Validate() error {
	if c.QueueURL == "" {
		return fmt.Errorf("queue_url is required")
	}
	if c.MaxMessages <= 0 || c.MaxMessages > 10 {
		return fmt.Errorf("max_messages must be between 1 and 10")
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be positive")
	}
	if c.FromAddress == "" {
		return fmt.Errorf("from_address is required")
	}
	if c.SNSEnabled && c.SNSTopicARN == "" {
		return fmt.Errorf("sns_topic_arn is required when sns is enabled")
	}
	return nil
}
