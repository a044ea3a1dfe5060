package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Configuration is entirely optional: the converter's default behavior
// consumes no configuration at all, and no environment variables are read.
type Config struct {
	Filter FilterConfig `toml:"filter"`
	Output OutputConfig `toml:"output"`
}

// FilterConfig tunes the corruption filter.
type FilterConfig struct {
	// ExtraMarkers lists additional substrings treated as corruption markers.
	// They are appended to the built-in set, never replace it.
	ExtraMarkers []string `toml:"extra_markers"`
}

// OutputConfig contains defaults for report output.
type OutputConfig struct {
	// TopArtists is the default number of artists shown by `stats --top`.
	TopArtists int `toml:"top_artists"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
