package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Redis
	RedisURL string `mapstructure:"REDIS_URL"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Odds feed
	OddsAPIKey              string        `mapstructure:"ODDS_API_KEY"`
	OddsAPIBaseURL          string        `mapstructure:"ODDS_API_BASE_URL"`
	OddsBookmakers          []string      `mapstructure:"ODDS_BOOKMAKERS"`
	OddsRequestsPerSecond   float64       `mapstructure:"ODDS_REQUESTS_PER_SECOND"`
	ExternalAPITimeout      time.Duration `mapstructure:"EXTERNAL_API_TIMEOUT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Snapshot cache
	SnapshotTTL     time.Duration `mapstructure:"SNAPSHOT_TTL"`
	RefreshInterval string        `mapstructure:"REFRESH_INTERVAL"`

	// Startup
	SkipInitialRefresh bool `mapstructure:"SKIP_INITIAL_REFRESH"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	// Empty means no Redis; the server falls back to its in-memory cache.
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("ODDS_API_KEY", "")
	viper.SetDefault("ODDS_API_BASE_URL", "https://api.the-odds-api.com/v4")
	viper.SetDefault("ODDS_BOOKMAKERS", "")
	viper.SetDefault("ODDS_REQUESTS_PER_SECOND", 5.0)
	viper.SetDefault("EXTERNAL_API_TIMEOUT", "10s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("SNAPSHOT_TTL", "5m")
	viper.SetDefault("REFRESH_INTERVAL", "30m")
	viper.SetDefault("SKIP_INITIAL_REFRESH", false)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse comma-separated lists
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}
	if booksStr := viper.GetString("ODDS_BOOKMAKERS"); booksStr != "" {
		config.OddsBookmakers = strings.Split(booksStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
