// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App        AppConfig
	Logger     LoggerConfig
	Server     ServerConfig
	Dataset    DatasetConfig
	Sheets     SheetsConfig
	Cache      CacheConfig
	Contribute ContributeConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
	CORSOrigins  []string      // Allowed CORS origins (default: *)
}

// DatasetConfig holds the local dataset configuration.
type DatasetConfig struct {
	// Path is the directory containing businesses.json, categories.json,
	// and suburbs.json.
	Path string
	// Watch reloads the dataset when its files change (default: true)
	Watch bool
}

// SheetsConfig holds the Google Sheets import configuration. Disabled
// unless both the spreadsheet id and API key are provided.
type SheetsConfig struct {
	SpreadsheetID string
	APIKey        string
}

// Enabled reports whether the remote spreadsheet source is configured.
func (s SheetsConfig) Enabled() bool {
	return s.SpreadsheetID != "" && s.APIKey != ""
}

// CacheConfig holds the fallback cache configuration.
type CacheConfig struct {
	// Path is the directory for the last-known-good dataset cache
	// (default: {dataset}/.cache).
	Path string
}

// ContributeConfig throttles contribution submissions per client IP.
type ContributeConfig struct {
	RatePerSecond float64 // (default: 0.2, one submission per 5s)
	Burst         int     // (default: 3)
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	datasetPath := flag.String("dataset-path", "", "Directory containing the dataset JSON files")
	datasetWatch := flag.String("dataset-watch", "", "Reload when dataset files change (default: true)")

	// Sheets flags
	spreadsheetID := flag.String("spreadsheet-id", "", "Google Sheets spreadsheet id for the remote dataset")
	sheetsAPIKey := flag.String("sheets-api-key", "", "Google Sheets API key")

	cachePath := flag.String("cache-path", "", "Directory for the dataset fallback cache")

	// Server flags
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated allowed CORS origins (default: *)")

	// Contribution flags
	contributeRate := flag.String("contribute-rate", "", "Contribution submissions per second per client (default: 0.2)")
	contributeBurst := flag.String("contribute-burst", "", "Contribution burst per client (default: 3)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	// Parse flags but don't exit on error - we want to handle it gracefully.
	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:        getConfigValue(*serverPort, "SERVER_PORT", "8080"),
			CORSOrigins: splitList(getConfigValue(*corsOrigins, "CORS_ORIGINS", "*")),
		},
		Dataset: DatasetConfig{
			Path:  getConfigValue(*datasetPath, "DATASET_PATH", "data"),
			Watch: getBoolConfigValue(*datasetWatch, "DATASET_WATCH", true),
		},
		Sheets: SheetsConfig{
			SpreadsheetID: getConfigValue(*spreadsheetID, "GOOGLE_SHEETS_ID", ""),
			APIKey:        getConfigValue(*sheetsAPIKey, "GOOGLE_SHEETS_API_KEY", ""),
		},
		Cache: CacheConfig{
			Path: getConfigValue(*cachePath, "CACHE_PATH", ""),
		},
		Contribute: ContributeConfig{
			RatePerSecond: getFloatConfigValue(*contributeRate, "CONTRIBUTE_RATE", 0.2),
			Burst:         getIntConfigValue(*contributeBurst, "CONTRIBUTE_BURST", 3),
		},
	}

	// Parse server timeouts.
	readTimeoutStr := getConfigValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s")
	readTimeoutDuration, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout %q: %w", readTimeoutStr, err)
	}
	cfg.Server.ReadTimeout = readTimeoutDuration

	writeTimeoutStr := getConfigValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s")
	writeTimeoutDuration, err := time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout %q: %w", writeTimeoutStr, err)
	}
	cfg.Server.WriteTimeout = writeTimeoutDuration

	idleTimeoutStr := getConfigValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	idleTimeoutDuration, err := time.ParseDuration(idleTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout %q: %w", idleTimeoutStr, err)
	}
	cfg.Server.IdleTimeout = idleTimeoutDuration

	// Expand dataset and cache paths.
	if err := cfg.expandDatasetPath(); err != nil {
		return nil, fmt.Errorf("invalid dataset path: %w", err)
	}
	if err := cfg.expandCachePath(); err != nil {
		return nil, fmt.Errorf("invalid cache path: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Dataset.Path == "" {
		return errors.New("dataset path cannot be empty after expansion")
	}

	if c.Contribute.RatePerSecond <= 0 {
		return fmt.Errorf("contribution rate must be positive, got %v", c.Contribute.RatePerSecond)
	}
	if c.Contribute.Burst < 1 {
		return fmt.Errorf("contribution burst must be at least 1, got %d", c.Contribute.Burst)
	}

	// An API key without a spreadsheet id (or vice versa) is almost
	// certainly a deployment mistake.
	if (c.Sheets.SpreadsheetID == "") != (c.Sheets.APIKey == "") {
		return errors.New("GOOGLE_SHEETS_ID and GOOGLE_SHEETS_API_KEY must be set together")
	}

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandDatasetPath expands ~ and makes the path absolute.
func (c *Config) expandDatasetPath() error {
	expanded, err := expandPath(c.Dataset.Path, "")
	if err != nil {
		return err
	}
	c.Dataset.Path = expanded
	return nil
}

// expandCachePath expands ~ and makes the path absolute.
// Defaults to {dataset}/.cache if not specified.
func (c *Config) expandCachePath() error {
	defaultPath := filepath.Join(c.Dataset.Path, ".cache")

	expanded, err := expandPath(c.Cache.Path, defaultPath)
	if err != nil {
		return err
	}
	c.Cache.Path = expanded
	return nil
}

// splitList splits a comma-separated value into trimmed entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float64 from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result float64
	if _, err := fmt.Sscanf(strValue, "%g", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
