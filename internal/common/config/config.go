// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Lex      LexConfig      `mapstructure:"lex"`
	Database DatabaseConfig `mapstructure:"database"`
	Dialog   DialogConfig   `mapstructure:"dialog"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Yelp     YelpConfig     `mapstructure:"yelp"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address      string `mapstructure:"address"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int    `mapstructure:"write_timeout"` // milliseconds
}

type AWSConfig struct {
	Region   string         `mapstructure:"region"`
	SQS      SQSConfig      `mapstructure:"sqs"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	SES      SESConfig      `mapstructure:"ses"`
	SNS      SNSConfig      `mapstructure:"sns"`
}

type SQSConfig struct {
	QueueURL          string `mapstructure:"queue_url"`
	MaxMessages       int    `mapstructure:"max_messages"`
	VisibilityTimeout int    `mapstructure:"visibility_timeout"` // seconds
	WaitTime          int    `mapstructure:"wait_time"`          // seconds
}

type DynamoDBConfig struct {
	Table string `mapstructure:"table"`
}

type SESConfig struct {
	FromAddress string `mapstructure:"from_address"`
	Subject     string `mapstructure:"subject"`
}

type SNSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	TopicARN string `mapstructure:"topic_arn"`
}

type LexConfig struct {
	BotName  string `mapstructure:"bot_name"`
	BotAlias string `mapstructure:"bot_alias"`
	UserID   string `mapstructure:"user_id"`
}

type DatabaseConfig struct {
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	URL       string   `mapstructure:"url"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	Index     string   `mapstructure:"index"`
}

type DialogConfig struct {
	BookingIntent string `mapstructure:"booking_intent"`
	Timezone      string `mapstructure:"timezone"`
}

type WorkerConfig struct {
	PollInterval int `mapstructure:"poll_interval"` // milliseconds
	Timeout      int `mapstructure:"timeout"`       // milliseconds
	SampleSize   int `mapstructure:"sample_size"`
}

type YelpConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	PageSize   int    `mapstructure:"page_size"`
	MaxPerPair int    `mapstructure:"max_per_pair"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
