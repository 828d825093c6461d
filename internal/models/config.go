package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	ServerAddress string        `mapstructure:"server_address"`
	LogLevel      string        `mapstructure:"log_level"`
	Environment   string        `mapstructure:"environment"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`

	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute"`
	RateLimitBurst     int `mapstructure:"rate_limit_burst"`

	DatabaseURL  string        `mapstructure:"database_url"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
	MaxRetryWait time.Duration `mapstructure:"max_retry_wait"`

	KafkaEnabled     bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string `mapstructure:"kafka_broker_list"`
	KafkaTopic       string `mapstructure:"kafka_topic"`
	SessionTimeoutMs int    `mapstructure:"kafka_session_timeout_ms"`

	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputFormat      string             `mapstructure:"output_format"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	// Defaults for geo fallback and demo seeding.
	CityName  string `mapstructure:"city_name"`
	SeedRows  int    `mapstructure:"seed_rows"`
	SeedMonth string `mapstructure:"seed_month"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("server_address", ":8080")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("environment", "local")
	viper.SetDefault("cache_ttl", "60s")
	viper.SetDefault("rate_limit_per_minute", 120)
	viper.SetDefault("rate_limit_burst", 20)
	viper.SetDefault("query_timeout", "30s")
	viper.SetDefault("max_retry_wait", "15s")
	viper.SetDefault("kafka_topic", "dashboard_events")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("output_format", "csv")
	viper.SetDefault("city_name", "Dubai")
	viper.SetDefault("seed_rows", 5000)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
