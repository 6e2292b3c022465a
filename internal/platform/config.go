package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LogLevelEnv overrides the configured log level.
const LogLevelEnv = "NOIR_LOG_LEVEL"

// Config is the command-line configuration file (YAML).
//
//	data_dir: ~/notes/noir
//	log_level: debug
//	dev_safety: false
type Config struct {
	DataDir   string `yaml:"data_dir"`
	LogLevel  string `yaml:"log_level"`
	DevSafety *bool  `yaml:"dev_safety"`
	ReadOnly  bool   `yaml:"read_only"`
}

// LoadConfig reads the YAML file at path (a missing file is an empty config),
// then applies overrides from the environment. envFiles are loaded with
// godotenv first; missing ones are skipped and variables already set win.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return cfg, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	if dir := os.Getenv(DataDirEnv); dir != "" {
		cfg.DataDir = dir
	}
	if lvl := os.Getenv(LogLevelEnv); lvl != "" {
		cfg.LogLevel = lvl
	}
	return cfg, nil
}

// Level parses LogLevel, defaulting to info.
func (c Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Options converts the file settings into service options.
func (c Config) Options() []Option {
	opts := []Option{WithReadOnly(c.ReadOnly)}
	if c.DevSafety != nil {
		opts = append(opts, WithDevSafety(*c.DevSafety))
	}
	return opts
}
