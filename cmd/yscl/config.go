package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is read from the working directory when present.
const defaultConfigFile = "yscl.toml"

// fileConfig is the layout of the TOML settings file.
type fileConfig struct {
	MaxDepth  *int   `toml:"max_depth"`
	Format    string `toml:"format"`
	Verbosity int    `toml:"verbosity"`
	Log       string `toml:"log"`

	path string // File the settings were read from, empty for defaults.
}

// loadConfig reads the settings file at path. A missing file yields the
// defaults unless required is set.
func loadConfig(path string, required bool) (*fileConfig, error) {
	var cfg fileConfig

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if !required {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown settings %v", path, undecoded)
	}
	if cfg.Format != "" {
		if _, ok := formatters[cfg.Format]; !ok {
			return nil, fmt.Errorf("%s: %w", path, unknownFormat(cfg.Format))
		}
	}

	cfg.path = path
	return &cfg, nil
}
