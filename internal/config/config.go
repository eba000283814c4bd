// ABOUTME: Tool configuration loaded from an XDG config file.
// ABOUTME: Selects the data directory, AI provider, and body weight for estimates.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nutrilog/nutrilog/internal/storage"
)

// Config stores nutrilog configuration.
type Config struct {
	// DataDir is the root directory for data storage; nutrilog.db lives
	// here. Supports ~ expansion. Defaults to ~/.local/share/nutrilog.
	DataDir string `json:"data_dir,omitempty"`

	// AIProvider selects the AI backend: "openai" (default) or "gemini".
	AIProvider string `json:"ai_provider,omitempty"`

	// AIModel overrides the provider's default model name.
	AIModel string `json:"ai_model,omitempty"`

	// BodyWeightKg is used for MET calorie estimates when no weight has
	// been logged yet.
	BodyWeightKg float64 `json:"body_weight_kg,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetAIProvider returns the configured provider, defaulting to "openai".
func (c *Config) GetAIProvider() string {
	if c.AIProvider == "" {
		return "openai"
	}
	return c.AIProvider
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite repository under the configured data dir.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "nutrilog.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "nutrilog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
