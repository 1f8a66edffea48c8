package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/EstherBlacksmith/blackjack.V.02/internal/logging"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "STORAGE_TYPE", "SQLITE_PATH", "GAMES_FILE",
		"DATABASE_URL", "ELASTICSEARCH_URL", "ELASTICSEARCH_RETENTION", "HTTP_ADDR",
		"DISCORD_TOKEN", "APP_ID", "GUILD_ID", "IRC_SERVER", "IRC_NICK", "IRC_CHANNEL",
		"IRC_TLS", "GAME_MAX_AGE", "CLEANUP_INTERVAL",
	} {
		s.T().Setenv(key, "")
	}
	s.T().Setenv("DATA_DIR", s.T().TempDir())
}

func (s *ConfigTestSuite) TestDefaults() {
	// Execute
	cfg, err := Load()

	// Assert
	s.Require().NoError(err)
	s.Equal(StorageMemory, cfg.StorageType)
	s.Equal(logging.INFO, cfg.LogLevel)
	s.Equal(":8080", cfg.HTTPAddr)
	s.Equal("crupier", cfg.IRC.Nick)
	s.True(cfg.IRC.UseTLS)
	s.Equal(24*time.Hour, cfg.GameMaxAge)
	s.Equal(time.Hour, cfg.CleanupInterval)
	s.Equal(90*24*time.Hour, cfg.Elasticsearch.Retention)
	s.False(cfg.Elasticsearch.Enabled())
	s.Equal(filepath.Join(cfg.DataDir, "blackjack.db"), cfg.SQLitePath)
	s.True(cfg.IsDevelopment())
}

func (s *ConfigTestSuite) TestOverrides() {
	// Setup
	s.T().Setenv("STORAGE_TYPE", "SQLite")
	s.T().Setenv("LOG_LEVEL", "debug")
	s.T().Setenv("GAME_MAX_AGE", "30m")
	s.T().Setenv("IRC_TLS", "false")
	s.T().Setenv("ELASTICSEARCH_URL", "http://localhost:9200")

	// Execute
	cfg, err := Load()

	// Assert
	s.Require().NoError(err)
	s.Equal(StorageSQLite, cfg.StorageType)
	s.Equal(logging.DEBUG, cfg.LogLevel)
	s.Equal(30*time.Minute, cfg.GameMaxAge)
	s.False(cfg.IRC.UseTLS)
	s.True(cfg.Elasticsearch.Enabled())
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Unknown storage", key: "STORAGE_TYPE", value: "mongo"},
		{name: "Postgres without URL", key: "STORAGE_TYPE", value: "postgres"},
		{name: "Bad duration", key: "GAME_MAX_AGE", value: "soon"},
		{name: "Bad bool", key: "IRC_TLS", value: "maybe"},
		{name: "Bad log level", key: "LOG_LEVEL", value: "loud"},
		{name: "Zero cleanup interval", key: "CLEANUP_INTERVAL", value: "0s"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)
			_, err := Load()
			s.Error(err)
		})
	}
}

func (s *ConfigTestSuite) TestFrontendValidation() {
	cfg := &Config{}
	s.Error(cfg.ValidateDiscord())
	s.Error(cfg.ValidateIRC())

	cfg.Discord = DiscordConfig{Token: "token", AppID: "app"}
	cfg.IRC = IRCConfig{Server: "irc.libera.chat:6697", Channel: "#blackjack"}
	s.NoError(cfg.ValidateDiscord())
	s.NoError(cfg.ValidateIRC())
}
