package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds application configuration
type Config struct {
	Port          string
	RedisAddr     string
	CacheTTL      time.Duration
	LogLevel      string
	LogFormat     string
	Epsilon       float64
	MaxIterations int
	RateLimit     int
	RateWindow    time.Duration
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	var err error
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if cfg.RateWindow, err = time.ParseDuration(getEnv("RATE_WINDOW", "1m")); err != nil {
		return nil, fmt.Errorf("RATE_WINDOW: %w", err)
	}
	if cfg.Epsilon, err = strconv.ParseFloat(getEnv("EPSILON", "0.001"), 64); err != nil {
		return nil, fmt.Errorf("EPSILON: %w", err)
	}
	if cfg.MaxIterations, err = strconv.Atoi(getEnv("MAX_SOLVER_ITERATIONS", "50000000")); err != nil {
		return nil, fmt.Errorf("MAX_SOLVER_ITERATIONS: %w", err)
	}
	if cfg.RateLimit, err = strconv.Atoi(getEnv("RATE_LIMIT", "5")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT: %w", err)
	}

	if cfg.Epsilon <= 0 {
		return nil, fmt.Errorf("EPSILON must be positive")
	}
	if cfg.MaxIterations < 0 {
		return nil, fmt.Errorf("MAX_SOLVER_ITERATIONS must not be negative")
	}
	if cfg.RateLimit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be positive")
	}

	return cfg, nil
}

// NewLogger builds the application logger. Unknown levels fall back to info.
func NewLogger(cfg *Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if strings.EqualFold(cfg.LogFormat, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
