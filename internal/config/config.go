package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration of the api and worker binaries.
type Config struct {
	Port     string
	RunLocal bool
	LogLevel string

	Mongo    MongoConfig
	Uploads  UploadConfig
	Cache    CacheConfig
	AWS      AWSConfig
	Telegram TelegramConfig
}

type MongoConfig struct {
	URI      string
	Database string
}

type UploadConfig struct {
	Dir       string
	URLPrefix string
}

// CacheConfig configures the menu list cache. An empty Addr disables it.
type CacheConfig struct {
	Addr    string
	MenuTTL time.Duration
}

// AWSConfig groups the optional order event queue and metrics namespace.
type AWSConfig struct {
	Region           string
	EndpointOverride string
	OrdersQueueURL   string
	MetricsNamespace string
}

type TelegramConfig struct {
	Token  string
	ChatID int64
}

var ErrMissingMongoURI = errors.New("MONGODB_URI is required")

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("MENU_CACHE_TTL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("parse MENU_CACHE_TTL: %w", err)
	}

	var chatID int64
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse TELEGRAM_CHAT_ID: %w", err)
		}
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		RunLocal: os.Getenv("RUN_LOCAL") == "true",
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: getEnv("MONGODB_DB", "myBlog"),
		},
		Uploads: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "public/uploads"),
			URLPrefix: getEnv("UPLOAD_URL_PREFIX", "/uploads"),
		},
		Cache: CacheConfig{
			Addr:    os.Getenv("REDIS_ADDR"),
			MenuTTL: ttl,
		},
		AWS: AWSConfig{
			Region:           getEnv("AWS_REGION", "us-east-1"),
			EndpointOverride: os.Getenv("AWS_ENDPOINT_OVERRIDE"),
			OrdersQueueURL:   os.Getenv("ORDERS_QUEUE_URL"),
			MetricsNamespace: os.Getenv("METRICS_NAMESPACE"),
		},
		Telegram: TelegramConfig{
			Token:  os.Getenv("TELEGRAM_TOKEN"),
			ChatID: chatID,
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, ErrMissingMongoURI
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
