package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// ElasticsearchConfig holds the optional game history index settings
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
	Retention   time.Duration
}

// Enabled reports whether an Elasticsearch URL was configured
func (c ElasticsearchConfig) Enabled() bool {
	return c.URL != ""
}

// DiscordConfig holds the Discord bot credentials
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string
}

// IRCConfig holds the IRC bot connection settings
type IRCConfig struct {
	Server  string
	Nick    string
	Channel string
	UseTLS  bool
}

// Config holds all configuration for the application
type Config struct {
	Environment string // "development" or "production"
	LogLevel    logging.Level

	// Storage
	StorageType   string
	DataDir       string
	SQLitePath    string
	GamesFilePath string
	PostgresURL   string

	Elasticsearch ElasticsearchConfig

	// Frontends
	HTTPAddr string
	Discord  DiscordConfig
	IRC      IRCConfig

	// Abandoned game cleanup
	GameMaxAge      time.Duration
	CleanupInterval time.Duration
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dataDir := getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data"))

	level, err := logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:   getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:      level,
		StorageType:   strings.ToLower(getEnvWithDefault("STORAGE_TYPE", StorageMemory)),
		DataDir:       dataDir,
		SQLitePath:    getEnvWithDefault("SQLITE_PATH", filepath.Join(dataDir, "blackjack.db")),
		GamesFilePath: getEnvWithDefault("GAMES_FILE", filepath.Join(dataDir, "games.json")),
		PostgresURL:   os.Getenv("DATABASE_URL"),
		Elasticsearch: ElasticsearchConfig{
			URL:         os.Getenv("ELASTICSEARCH_URL"),
			Username:    os.Getenv("ELASTICSEARCH_USERNAME"),
			Password:    os.Getenv("ELASTICSEARCH_PASSWORD"),
			IndexPrefix: getEnvWithDefault("ELASTICSEARCH_INDEX_PREFIX", "blackjack"),
		},
		HTTPAddr: getEnvWithDefault("HTTP_ADDR", ":8080"),
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("APP_ID"),
			GuildID: os.Getenv("GUILD_ID"),
		},
		IRC: IRCConfig{
			Server:  os.Getenv("IRC_SERVER"),
			Nick:    getEnvWithDefault("IRC_NICK", "crupier"),
			Channel: os.Getenv("IRC_CHANNEL"),
		},
	}

	if cfg.IRC.UseTLS, err = getBoolWithDefault("IRC_TLS", true); err != nil {
		return nil, err
	}
	if cfg.Elasticsearch.Retention, err = getDurationWithDefault("ELASTICSEARCH_RETENTION", 90*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.GameMaxAge, err = getDurationWithDefault("GAME_MAX_AGE", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getDurationWithDefault("CLEANUP_INTERVAL", time.Hour); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.StorageType == StorageSQLite || cfg.StorageType == StorageFile {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// validate checks the storage settings every binary depends on
func (c *Config) validate() error {
	switch c.StorageType {
	case StorageMemory, StorageSQLite, StorageFile:
	case StoragePostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_TYPE=postgres")
		}
	default:
		return fmt.Errorf("unknown STORAGE_TYPE %q", c.StorageType)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL must be positive")
	}
	return nil
}

// ValidateDiscord checks the settings the Discord bot needs
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	return nil
}

// ValidateIRC checks the settings the IRC bot needs
func (c *Config) ValidateIRC() error {
	if c.IRC.Server == "" {
		return fmt.Errorf("IRC_SERVER is required")
	}
	if c.IRC.Channel == "" {
		return fmt.Errorf("IRC_CHANNEL is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getBoolWithDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
