package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. IFORGOR_RUNNER
	EnvPrefix = "IFORGOR"

	ConfigFileName   = "config.toml"
	RegistryFileName = "registry.toml"
	HistoryFileName  = "history.toml"
	LogFileName      = "iforgor.log"

	dataDirName = ".iforgor"
)

// RunnerKind selects how scripts are executed
type RunnerKind string

const (
	// RunnerShell writes the script to an executable temp file
	RunnerShell RunnerKind = "shell"
	// RunnerBuiltin interprets the script in-process
	RunnerBuiltin RunnerKind = "builtin"
)

// Config represents the application configuration
type Config struct {
	// DataDir holds the registry, history, config and log files
	DataDir      string     `mapstructure:"-"`
	Runner       RunnerKind `mapstructure:"runner"`
	Shell        string     `mapstructure:"shell"`
	HistoryLimit int        `mapstructure:"history_limit"` // 0 keeps everything
	LogLevel     string     `mapstructure:"log_level"`
	LogFile      string     `mapstructure:"log_file"`
}

// DefaultConfig returns the default configuration for a data directory
func DefaultConfig(dataDir string) *Config {
	return &Config{
		DataDir:      dataDir,
		Runner:       RunnerShell,
		Shell:        "/bin/sh",
		HistoryLimit: 0,
		LogLevel:     "info",
		LogFile:      filepath.Join(dataDir, LogFileName),
	}
}

// DefaultDataDir returns ~/.iforgor
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dataDirName), nil
}

// ResolveDataDir picks the data directory: the flag value if set, then
// IFORGOR_DATA_DIR, then the default
func ResolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvPrefix + "_DATA_DIR"); env != "" {
		return env, nil
	}
	return DefaultDataDir()
}

// Load reads <dataDir>/config.toml if it exists and applies environment
// overrides on top of the defaults
func Load(dataDir string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig(dataDir)
	v.SetDefault("runner", string(defaults.Runner))
	v.SetDefault("shell", defaults.Shell)
	v.SetDefault("history_limit", defaults.HistoryLimit)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := filepath.Join(dataDir, ConfigFileName)
	if fileExists(path) {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the values that have a closed set of options
func (c *Config) Validate() error {
	switch c.Runner {
	case RunnerShell, RunnerBuiltin:
	default:
		return fmt.Errorf("runner must be %q or %q, got %q", RunnerShell, RunnerBuiltin, c.Runner)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	if c.Runner == RunnerShell && c.Shell == "" {
		return fmt.Errorf("shell must be set for the %q runner", RunnerShell)
	}
	return nil
}

// RegistryPath returns the registry file path
func (c *Config) RegistryPath() string {
	return filepath.Join(c.DataDir, RegistryFileName)
}

// HistoryPath returns the history file path
func (c *Config) HistoryPath() string {
	return filepath.Join(c.DataDir, HistoryFileName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
