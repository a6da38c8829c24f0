package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Share: ShareConfig{
			Title: "2048",
			URL:   "https://github.com/vovakirdan/tui-2048",
		},
		Theme: ThemeConfig{
			Empty:  "gray",
			Small:  "yellow",
			Medium: "cyan",
			Large:  "magenta",
			Huge:   "bright_red",
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
