// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like YELP_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overrides, ignored when not present
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from multiple possible locations so the binaries and the
// package tests can all pick it up.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.Yelp.APIKey == "" {
		if val := os.Getenv("YELP_API_KEY"); val != "" {
			cfg.Yelp.APIKey = val
		}
	}

	if cfg.AWS.SQS.QueueURL == "" {
		if val := os.Getenv("SQS_QUEUE_URL"); val != "" {
			cfg.AWS.SQS.QueueURL = val
		}
	}

	if cfg.AWS.SES.FromAddress == "" {
		if val := os.Getenv("SES_FROM_ADDRESS"); val != "" {
			cfg.AWS.SES.FromAddress = val
		}
	}

	if cfg.Database.Elasticsearch.Password == "" {
		if val := os.Getenv("ELASTICSEARCH_PASSWORD"); val != "" {
			cfg.Database.Elasticsearch.Password = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10000
	}

	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.AWS.SQS.MaxMessages == 0 {
		cfg.AWS.SQS.MaxMessages = 5
	}
	if cfg.AWS.SQS.VisibilityTimeout == 0 {
		cfg.AWS.SQS.VisibilityTimeout = 10
	}
	if cfg.AWS.SES.Subject == "" {
		cfg.AWS.SES.Subject = "Dining Suggestions"
	}
	if cfg.AWS.DynamoDB.Table == "" {
		cfg.AWS.DynamoDB.Table = "yelp-restaurants"
	}

	if cfg.Lex.BotAlias == "" {
		cfg.Lex.BotAlias = "prod"
	}

	if cfg.Database.Elasticsearch.Index == "" {
		cfg.Database.Elasticsearch.Index = "restaurants"
	}
	if cfg.Database.Elasticsearch.URL == "" && len(cfg.Database.Elasticsearch.Addresses) > 0 {
		cfg.Database.Elasticsearch.URL = cfg.Database.Elasticsearch.Addresses[0]
	}

	if cfg.Dialog.BookingIntent == "" {
		cfg.Dialog.BookingIntent = "MakeAppointment"
	}
	if cfg.Dialog.Timezone == "" {
		cfg.Dialog.Timezone = "America/New_York"
	}

	if cfg.Worker.PollInterval == 0 {
		cfg.Worker.PollInterval = 30000
	}
	if cfg.Worker.Timeout == 0 {
		cfg.Worker.Timeout = 30000
	}
	if cfg.Worker.SampleSize == 0 {
		cfg.Worker.SampleSize = 5
	}

	if cfg.Yelp.BaseURL == "" {
		cfg.Yelp.BaseURL = "https://api.yelp.com/v3/businesses/search"
	}
	if cfg.Yelp.PageSize == 0 {
		cfg.Yelp.PageSize = 50
	}
	if cfg.Yelp.MaxPerPair == 0 {
		cfg.Yelp.MaxPerPair = 1000
	}
	if cfg.Yelp.Timeout == 0 {
		cfg.Yelp.Timeout = 10000
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.AWS.SQS.QueueURL == "" {
		return fmt.Errorf("aws.sqs.queue_url is required")
	}

	if cfg.Lex.BotName == "" {
		return fmt.Errorf("lex.bot_name is required")
	}

	if len(cfg.Database.Elasticsearch.Addresses) == 0 && cfg.Database.Elasticsearch.URL == "" {
		return fmt.Errorf("database.elasticsearch.addresses or url is required")
	}

	if cfg.AWS.SES.FromAddress == "" {
		return fmt.Errorf("aws.ses.from_address is required")
	}

	if _, err := time.LoadLocation(cfg.Dialog.Timezone); err != nil {
		return fmt.Errorf("dialog.timezone is not a valid IANA zone: %w", err)
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// Location resolves the configured reference time zone. validateConfig has
// already checked the zone name, so errors here mean the config was never
// validated.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Dialog.Timezone)
}
