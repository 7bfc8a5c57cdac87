package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8090" {
		t.Errorf("Expected Port to be 8090, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Analyze.BatchSize != 5 {
		t.Errorf("Expected BatchSize to be 5, got %d", cfg.Analyze.BatchSize)
	}

	if cfg.Analyze.BatchDelay != 200*time.Millisecond {
		t.Errorf("Expected BatchDelay to be 200ms, got %s", cfg.Analyze.BatchDelay)
	}

	if cfg.Analyze.TopCount != 5 {
		t.Errorf("Expected TopCount to be 5, got %d", cfg.Analyze.TopCount)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	// Set custom environment variables
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("ANALYZE_BATCH_SIZE", "10")
	os.Setenv("ANALYZE_BATCH_DELAY", "1s")
	os.Setenv("YOUTUBE_CAPTION_LANGS", "en,ko")
	os.Setenv("LOG_LEVEL", "info")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("ANALYZE_BATCH_SIZE")
		os.Unsetenv("ANALYZE_BATCH_DELAY")
		os.Unsetenv("YOUTUBE_CAPTION_LANGS")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Analyze.BatchSize != 10 {
		t.Errorf("Expected BatchSize to be 10, got %d", cfg.Analyze.BatchSize)
	}

	if cfg.Analyze.BatchDelay != time.Second {
		t.Errorf("Expected BatchDelay to be 1s, got %s", cfg.Analyze.BatchDelay)
	}

	if len(cfg.YouTube.Languages) != 2 || cfg.YouTube.Languages[1] != "ko" {
		t.Errorf("Expected caption langs [en ko], got %v", cfg.YouTube.Languages)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be info, got %s", cfg.LogLevel)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "sandbox")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error for invalid ENV, got nil")
	}
}

func TestValidateSMTPRequiredWhenEnabled(t *testing.T) {
	os.Setenv("SMTP_ENABLED", "true")
	defer os.Unsetenv("SMTP_ENABLED")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when SMTP_ENABLED=true without SMTP_HOST, got nil")
	}
}
