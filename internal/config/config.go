package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage  StorageConfig
	History  HistoryConfig
	Windows  WindowsConfig
	Launch   LaunchConfig
	QuickCmd QuickCmdConfig
	Log      LogConfig
}

// StorageConfig selects where histories and aliases are persisted.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string
	Dir     string
}

// HistoryConfig holds recall settings.
type HistoryConfig struct {
	Max int
}

// WindowsConfig holds window list settings.
type WindowsConfig struct {
	// ExcludePath points at the YAML exclusion rules.
	ExcludePath string `mapstructure:"exclude_path"`
}

// LaunchConfig holds the launch item directory.
type LaunchConfig struct {
	Dir string
}

// QuickCmdConfig points at the named command file.
type QuickCmdConfig struct {
	Path string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	Path  string
}

// Load reads configuration from file and env. Env var overrides use prefix QUICKWIN_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "quickwin")
	cfgDir := filepath.Join(os.Getenv("HOME"), ".config", "quickwin")

	// default values
	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.dir", dataDir)
	v.SetDefault("history.max", 100)
	v.SetDefault("windows.exclude_path", filepath.Join(cfgDir, "exclude.yaml"))
	v.SetDefault("launch.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "applications"))
	v.SetDefault("quickcmd.path", filepath.Join(cfgDir, "quickcmds.yaml"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("QUICKWIN_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(cfgDir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUICKWIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Storage.Backend != "file" && c.Storage.Backend != "sqlite" {
		return Config{}, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.History.Max < 1 {
		return Config{}, fmt.Errorf("history.max must be positive, got %d", c.History.Max)
	}
	return c, nil
}
