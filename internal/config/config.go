package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the klubbctl tool.
type Config struct {
	BaseURL               string `json:"base_url,omitempty"`
	SessionPath           string `json:"session_path,omitempty"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds,omitempty"`
	SectionsPage          string `json:"sections_page,omitempty"`
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Load loads configuration with the following precedence (highest to lowest):
// 1. Command-line flags
// 2. Environment variables (a .env file in the working directory is read first)
// 3. Config file
// 4. Defaults
// Returns an error if any required value is missing.
func Load(configFile, baseURLFlag, sessionPathFlag string) (*Config, error) {
	var config Config

	// Step 1: Load from config file if provided
	if configFile != "" {
		fileConfig, err := LoadFromFile(configFile)
		if err != nil {
			return nil, err
		}
		config = *fileConfig
	}

	// Step 2: Override with environment variables.
	// A .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	if baseURL := os.Getenv("KLUBB_BASE_URL"); baseURL != "" {
		config.BaseURL = baseURL
	}
	if sessionPath := os.Getenv("KLUBB_SESSION_PATH"); sessionPath != "" {
		config.SessionPath = sessionPath
	}
	if timeout := os.Getenv("KLUBB_REQUEST_TIMEOUT"); timeout != "" {
		seconds, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid KLUBB_REQUEST_TIMEOUT %q: %w", timeout, err)
		}
		config.RequestTimeoutSeconds = seconds
	}
	if page := os.Getenv("KLUBB_SECTIONS_PAGE"); page != "" {
		config.SectionsPage = page
	}

	// Step 3: Override with command-line flags (highest priority)
	if baseURLFlag != "" {
		config.BaseURL = baseURLFlag
	}
	if sessionPathFlag != "" {
		config.SessionPath = sessionPathFlag
	}

	// Step 4: Apply defaults and validate required fields
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base URL must be provided via --base-url flag, KLUBB_BASE_URL environment variable, or config file")
	}

	if config.SessionPath == "" {
		config.SessionPath = defaultSessionPath()
	}

	if config.RequestTimeoutSeconds <= 0 {
		config.RequestTimeoutSeconds = 30
	}

	if config.SectionsPage == "" {
		config.SectionsPage = "information"
	}

	return &config, nil
}

// defaultSessionPath places the session file in the user's home directory,
// falling back to the working directory when no home is available.
func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klubbctl-session.json"
	}
	return filepath.Join(home, ".klubbctl-session.json")
}
