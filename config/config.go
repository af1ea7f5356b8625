package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime settings for the bot and the status server
type Config struct {
	BotToken    string
	ChatID      int64
	AdminIDs    []int64
	DBPath      string
	LogDir      string
	LogLevel    string
	StatusAddr  string
	StatusToken string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		DBPath:      getEnv("DB_PATH", "data/cafe.db"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		StatusAddr:  getEnv("STATUS_ADDR", ":8080"),
		StatusToken: os.Getenv("STATUS_TOKEN"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	if chatID := os.Getenv("CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAT_ID %q: %w", chatID, err)
		}
		cfg.ChatID = id
	}

	adminIDs, err := parseAdminIDs(os.Getenv("ADMIN_ID"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = adminIDs

	return cfg, nil
}

// IsAdmin reports whether the given Telegram user ID is a bot admin
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// GameChatOnly reports whether game commands are restricted to a single chat
func (c *Config) GameChatOnly() bool {
	return c.ChatID != 0
}

// parseAdminIDs parses a comma-separated list of Telegram user IDs
func parseAdminIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// getEnv returns the environment variable value or a default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
