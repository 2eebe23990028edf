// file:radix/pkg/x_log/config.go
package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Defaults ----------

const defaultConfigPath = "./xlog.json"

var defaultConfig = Config{
	Level:      "info",
	LogFile:    "logs/radix.log",
	ToConsole:  true,
	ToFile:     false,
	Style:      "dark",
	MaxSize:    10, // MB
	MaxBackups: 5,  // rotated files
	MaxAge:     7,  // days
	Compress:   true,
}

// Config controls log level, sinks and rotation.
type Config struct {
	Level      string `json:"level"`
	LogFile    string `json:"log_file"`
	ToConsole  bool   `json:"to_console"`
	ToFile     bool   `json:"to_file"`
	Style      string `json:"style"`
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`
	Compress   bool   `json:"compress"`
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json.
func LoadConfig(path string) (*Config, error) {
	// Resolve path
	if path == "" {
		path = os.Getenv("XLOG_CONFIG")
		if path == "" {
			path = defaultConfigPath
		}
	}

	// Read file
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Return default config if file not found
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	cfg := defaultConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}
	return &cfg, nil
}
