package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	appDir         = "slideover"
	configFileName = "config.toml"
)

func getConfigFilePath() string {
	// useful during development or other non-standard setups.
	if dir := os.Getenv("SLIDEOVER_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, configFileName)
		}
	}

	rel := filepath.Join(appDir, configFileName)
	if found, err := xdg.SearchConfigFile(rel); err == nil {
		return found
	}
	return filepath.Join(xdg.ConfigHome, rel)
}

// GetConfigDir returns the directory the config file is (or would be) in.
func GetConfigDir() string {
	return filepath.Dir(getConfigFilePath())
}

func loadDefaultConfig() *Config {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: no embedded default config found: %v\n", err)
		os.Exit(1)
	}

	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: failed to load embedded default config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// Load decodes data on top of the current values, so a partial user file
// only overrides the keys it sets. Colour tables merge per key.
func (c *Config) Load(data string) error {
	base := c.UI.Colors
	c.UI.Colors = nil

	if _, err := toml.Decode(data, c); err != nil {
		return err
	}

	c.UI.Colors = mergeColors(base, c.UI.Colors)
	return nil
}

// LoadConfigFile reads the user's config file. A missing file is not an
// error; it returns nil data.
func LoadConfigFile() ([]byte, string, error) {
	configFile := getConfigFilePath()
	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, configFile, nil
		}
		return nil, configFile, err
	}
	return data, configFile, nil
}

// LoadUserConfig overlays the user's config file onto Current and validates
// the result. It returns the path that was consulted.
func LoadUserConfig() (string, error) {
	data, path, err := LoadConfigFile()
	if err != nil {
		return path, fmt.Errorf("reading %s: %w", path, err)
	}
	if data != nil {
		if err := Current.Load(string(data)); err != nil {
			return path, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := Current.Validate(); err != nil {
		return path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return path, nil
}
