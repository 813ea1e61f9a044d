package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appDir = "paintoverlay"

func getConfigFilePath() string {
	if dir := os.Getenv("PAINTOVERLAY_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, appDir, "config.toml")
}

func Default() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default config: %w", err)
	}
	c := &Config{}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("embedded default config: %w", err)
	}
	return c, nil
}

// Load decodes data over the values already in c.
func (c *Config) Load(data string) error {
	metadata, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		log.Printf("[CONFIG] Ignoring unknown keys: %v", undecoded)
	}
	return nil
}

// LoadFile applies the file at path over the defaults. A missing file is
// not an error.
func LoadFile(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return c, c.Validate()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, c.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Load reads the user's config file, falling back to the embedded defaults.
func Load() (*Config, error) {
	return LoadFile(getConfigFilePath())
}
