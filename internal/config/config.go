package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Inference service. APIKey may legitimately be empty at startup: the
	// normalizer fails fast at call time, not at boot.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Reminder sweep
	ReminderInterval     time.Duration
	ReminderWindow       time.Duration
	NotificationsEnabled bool

	// Rate limiting
	APIRateLimit  int
	APIRateWindow time.Duration

	AllowedOrigin string

	LogLevel string
	LogJSON  bool
}

// Load reads configuration from the environment, with .env as a
// convenience for local runs. Numeric values fall back to defaults when
// missing or malformed.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:              envStr("APP_PORT", "8080"),
		RedisAddr:            envStr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		RedisDB:              envInt("REDIS_DB", 0),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:        envStr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:          envStr("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout:        envSeconds("OPENAI_TIMEOUT_SECONDS", 10*time.Second),
		ReminderInterval:     envSeconds("REMINDER_INTERVAL_SECONDS", 10*time.Second),
		ReminderWindow:       envSeconds("REMINDER_WINDOW_SECONDS", 5*time.Minute),
		NotificationsEnabled: os.Getenv("NOTIFICATIONS_ENABLED") != "false",
		APIRateLimit:         envInt("API_RATE_LIMIT", 60),
		APIRateWindow:        envSeconds("API_RATE_WINDOW_SECONDS", time.Minute),
		AllowedOrigin:        os.Getenv("ALLOWED_ORIGIN"),
		LogLevel:             envStr("LOG_LEVEL", "info"),
		LogJSON:              os.Getenv("LOG_JSON") == "true",
	}

	return cfg
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return def
}
