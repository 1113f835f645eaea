package config

import (
	"os"
	"strconv"

	"csvscope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Window WindowConfig
	Chart  ChartConfig
	Data   DataConfig
}

// WindowConfig holds main window geometry
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// ChartConfig holds chart window geometry and plotting limits
type ChartConfig struct {
	Width          int
	Height         int
	HistogramBins  int
	MaxCategories  int // cardinality cap for bar/pie charts
}

// DataConfig holds file loading settings
type DataConfig struct {
	MaxFileSize int64 // bytes
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Window: WindowConfig{
			Title:  getEnvOrDefault("WINDOW_TITLE", "CSV Analyzer"),
			Width:  getEnvIntOrDefault("WINDOW_WIDTH", 900),
			Height: getEnvIntOrDefault("WINDOW_HEIGHT", 600),
		},
		Chart: ChartConfig{
			Width:         getEnvIntOrDefault("CHART_WIDTH", 800),
			Height:        getEnvIntOrDefault("CHART_HEIGHT", 600),
			HistogramBins: getEnvIntOrDefault("HISTOGRAM_BINS", 10),
			MaxCategories: getEnvIntOrDefault("MAX_CHART_CATEGORIES", 50),
		},
		Data: DataConfig{
			MaxFileSize: int64(getEnvIntOrDefault("MAX_FILE_SIZE_MB", 50)) * 1024 * 1024,
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return errors.ConfigInvalid("window dimensions must be positive")
	}
	if config.Chart.Width <= 0 || config.Chart.Height <= 0 {
		return errors.ConfigInvalid("chart dimensions must be positive")
	}
	if config.Chart.HistogramBins < 1 {
		return errors.ConfigInvalid("histogram bin count must be at least 1")
	}
	if config.Chart.MaxCategories < 1 {
		return errors.ConfigInvalid("chart category cap must be at least 1")
	}
	if config.Data.MaxFileSize <= 0 {
		return errors.ConfigInvalid("max file size must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
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
