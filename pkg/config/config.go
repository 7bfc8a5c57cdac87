package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Redis
	Redis RedisConfig

	// External APIs
	YouTube YouTubeConfig
	Yahoo   YahooConfig

	// Analysis pipeline
	Analyze AnalyzeConfig

	// Digest email
	SMTP   SMTPConfig
	Digest DigestConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// YouTubeConfig holds YouTube Innertube configuration
type YouTubeConfig struct {
	BaseURL   string
	Languages []string // preferred caption languages, in order
	CacheTTL  time.Duration
}

// YahooConfig holds Yahoo Finance configuration
type YahooConfig struct {
	BaseURL string
}

// AnalyzeConfig holds pipeline tuning parameters
type AnalyzeConfig struct {
	BatchSize  int           // rating fetches issued concurrently per batch
	BatchDelay time.Duration // pause between batches
	TopCount   int           // default number of top picks
}

// SMTPConfig holds SMTP configuration for digest emails
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
	Enabled  bool
}

// DigestConfig holds the scheduled digest configuration
type DigestConfig struct {
	Schedule string   // cron expression (with seconds field)
	VideoIDs []string // videos analyzed on each run
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		// External APIs
		YouTube: YouTubeConfig{
			BaseURL:   getEnv("YOUTUBE_BASE_URL", "https://www.youtube.com"),
			Languages: getEnvAsSlice("YOUTUBE_CAPTION_LANGS", []string{"en"}),
			CacheTTL:  getEnvAsDuration("YOUTUBE_CACHE_TTL", "24h"),
		},

		Yahoo: YahooConfig{
			BaseURL: getEnv("YAHOO_BASE_URL", "https://query2.finance.yahoo.com"),
		},

		// Analysis pipeline
		Analyze: AnalyzeConfig{
			BatchSize:  getEnvAsInt("ANALYZE_BATCH_SIZE", 5),
			BatchDelay: getEnvAsDuration("ANALYZE_BATCH_DELAY", "200ms"),
			TopCount:   getEnvAsInt("ANALYZE_TOP_COUNT", 5),
		},

		// Digest email
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
			To:       getEnv("SMTP_TO", ""),
			Enabled:  getEnvAsBool("SMTP_ENABLED", false),
		},

		Digest: DigestConfig{
			Schedule: getEnv("DIGEST_SCHEDULE", "0 0 7 * * *"), // 07:00 daily
			VideoIDs: getEnvAsSlice("DIGEST_VIDEO_IDS", nil),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Analyze.BatchSize < 1 {
		return fmt.Errorf("ANALYZE_BATCH_SIZE must be at least 1")
	}
	if c.Analyze.TopCount < 1 {
		return fmt.Errorf("ANALYZE_TOP_COUNT must be at least 1")
	}

	// SMTP settings are only required when digest emails are enabled
	if c.SMTP.Enabled {
		if c.SMTP.Host == "" || c.SMTP.From == "" || c.SMTP.To == "" {
			return fmt.Errorf("SMTP_HOST, SMTP_FROM and SMTP_TO are required when SMTP_ENABLED=true")
		}
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
			filepath.Join(exeDir, "..", "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
