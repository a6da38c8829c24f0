// Package config provides YAML-based configuration loading for tui-2048.
package config

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Share   ShareConfig   `yaml:"share"`
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	Seed int64 `yaml:"seed"` // 0 = seed from current time
}

// ShareConfig defines the text produced by the share action.
type ShareConfig struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// ThemeConfig maps tile tiers to color names.
type ThemeConfig struct {
	Empty  string `yaml:"empty"`
	Small  string `yaml:"small"`  // 2 and 4
	Medium string `yaml:"medium"` // 8
	Large  string `yaml:"large"`  // 16
	Huge   string `yaml:"huge"`   // 32 and up
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"` // empty = ~/.t2048/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
