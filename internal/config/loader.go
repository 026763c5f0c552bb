package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.verbonia/config.yaml -> ./configs/verbonia.yaml -> embedded default.
// Files are layered over the defaults, so they only need the settings they change.
func Load(customPath string) (Config, error) {
	cfg, err := parse(defaultYAML, Default())
	if err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if cfg, err = parse(data, cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", "verbonia.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if layered, err := parse(data, cfg); err == nil {
			return layered, layered.Validate()
		}
	}

	return cfg, cfg.Validate()
}

func parse(data []byte, base Config) (Config, error) {
	cfg := base
	cfg.Palette = make(map[string]string, len(base.Palette))
	for k, v := range base.Palette {
		cfg.Palette[k] = v
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".verbonia", "config.yaml")
}
