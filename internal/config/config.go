// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads statlab settings from the environment and an
// optional .env file.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config is the complete statlab configuration.
type Config struct {
	LogLevel string

	// Lang is the preferred language tag for reports, such as "zh"
	// or "en".
	Lang string

	Chart  ChartConfig
	Server ServerConfig
	AI     AIConfig
}

// ChartConfig holds the default chart settings.
type ChartConfig struct {
	Bins          int
	Smoothing     float64
	PieCategories int
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string
}

// AIConfig holds settings for the DashScope text generation service.
type AIConfig struct {
	Endpoint string
	Model    string
	Timeout  time.Duration

	// KeystorePath is the file holding the stored API key.
	KeystorePath string
}

// Defaults used when the corresponding variable is unset.
const (
	DefaultEndpoint = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"
	DefaultModel    = "qwen-turbo"
)

// LoadEnvFile loads variables from a dotenv file at path without
// overriding variables already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return errors.Wrapf(err, "loading %s", path)
	}
	return nil
}

// Load reads the configuration from environment variables and
// validates it.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
		Lang:     getEnvOrDefault("STATLAB_LANG", "zh"),
		Chart: ChartConfig{
			Bins:          getEnvIntOrDefault("STATLAB_BINS", 10),
			Smoothing:     getEnvFloatOrDefault("STATLAB_SMOOTHING", 1),
			PieCategories: getEnvIntOrDefault("STATLAB_PIE_CATEGORIES", 5),
		},
		Server: ServerConfig{
			Addr: getEnvOrDefault("STATLAB_ADDR", ":8080"),
		},
		AI: AIConfig{
			Endpoint:     getEnvOrDefault("DASHSCOPE_ENDPOINT", DefaultEndpoint),
			Model:        getEnvOrDefault("DASHSCOPE_MODEL", DefaultModel),
			Timeout:      getEnvDurationOrDefault("DASHSCOPE_TIMEOUT", 60*time.Second),
			KeystorePath: getEnvOrDefault("STATLAB_KEYSTORE", defaultKeystorePath()),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// Validate checks that the chart settings are usable.
func (c *Config) Validate() error {
	switch {
	case c.Chart.Bins < 1:
		return errors.Errorf("STATLAB_BINS must be at least 1, got %d", c.Chart.Bins)
	case !(c.Chart.Smoothing > 0):
		return errors.Errorf("STATLAB_SMOOTHING must be positive, got %v", c.Chart.Smoothing)
	case c.Chart.PieCategories < 1:
		return errors.Errorf("STATLAB_PIE_CATEGORIES must be at least 1, got %d", c.Chart.PieCategories)
	case c.AI.Timeout <= 0:
		return errors.Errorf("DASHSCOPE_TIMEOUT must be positive, got %v", c.AI.Timeout)
	}
	return nil
}

func defaultKeystorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".statlab.env"
	}
	return filepath.Join(dir, "statlab", "keystore.env")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
