package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const defaultHTTPAddr = ":8080"
const defaultLogLevel = "info"
const defaultChannelID = "LedgerApp"
const defaultChannelKey = "LedgerKey001"
const defaultPageSize = 10

type Config struct {
	HTTPAddr        string
	LogLevel        string
	ChannelID       string
	ChannelKeyHash  []byte
	DefaultPageSize int
}

func Load() (Config, error) {
	// A missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = defaultHTTPAddr
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	keyHash, err := loadChannelKeyHash()
	if err != nil {
		return Config{}, err
	}

	pageSize := defaultPageSize
	if raw := strings.TrimSpace(os.Getenv("DEFAULT_PAGE_SIZE")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return Config{}, fmt.Errorf("invalid DEFAULT_PAGE_SIZE %q", raw)
		}
		pageSize = parsed
	}

	return Config{
		HTTPAddr:        addr,
		LogLevel:        logLevel,
		ChannelID:       channelID,
		ChannelKeyHash:  keyHash,
		DefaultPageSize: pageSize,
	}, nil
}

// loadChannelKeyHash prefers a pre-computed bcrypt hash from the environment
// and otherwise hashes the configured (or default) plain key at startup.
func loadChannelKeyHash() ([]byte, error) {
	if hash := strings.TrimSpace(os.Getenv("CHANNEL_KEY_HASH")); hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("invalid CHANNEL_KEY_HASH: %w", err)
		}
		return []byte(hash), nil
	}

	key := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if key == "" {
		key = defaultChannelKey
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash channel key: %w", err)
	}
	return hashed, nil
}
