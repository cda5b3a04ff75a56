// Package config handles the configuration directory, config file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"todo/internal/tasklist"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional YAML settings filename.
	ConfigFile = "config.yaml"

	// EnvFile is the optional dotenv filename read from the config directory.
	EnvFile = ".env"

	// BackendSQLite stores tasks in a SQLite database.
	BackendSQLite = "sqlite"

	// BackendBolt stores tasks in a bbolt file.
	BackendBolt = "bolt"
)

// Environment variables overriding config.yaml.
const (
	EnvBackend         = "TODO_BACKEND"
	EnvDefaultPriority = "TODO_DEFAULT_PRIORITY"
	EnvEditPlacement   = "TODO_EDIT_PLACEMENT"
	EnvDataFile        = "TODO_DATA_FILE"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Backend selects the storage engine: "sqlite" or "bolt".
	Backend string

	// DataFile overrides the database path. Relative paths are resolved
	// against Dir.
	DataFile string

	// DefaultPriority is used by add when no priority is given.
	DefaultPriority tasklist.Priority

	// EditPlacement decides where an edited task ends up in the list.
	EditPlacement tasklist.EditPlacement
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	Backend         string `yaml:"backend"`
	DataFile        string `yaml:"data_file"`
	DefaultPriority string `yaml:"default_priority"`
	EditPlacement   string `yaml:"edit_placement"`
}

// Defaults returns a Config with built-in settings for dir.
func Defaults(dir string) *Config {
	return &Config{
		Dir:             dir,
		Backend:         BackendSQLite,
		DefaultPriority: tasklist.DefaultPriority,
		EditPlacement:   tasklist.PlacementPreserve,
	}
}

// New creates a Config for the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
// Settings are layered: process env > .env > config.yaml > defaults.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Defaults(dir)

	fc, err := readFile(cfg.ConfigPath())
	if err != nil {
		return nil, err
	}

	dotenv, err := readEnvFile(filepath.Join(dir, EnvFile))
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return dotenv[key]
	}

	backend := firstNonEmpty(lookup(EnvBackend), fc.Backend)
	dataFile := firstNonEmpty(lookup(EnvDataFile), fc.DataFile)
	priority := firstNonEmpty(lookup(EnvDefaultPriority), fc.DefaultPriority)
	placement := firstNonEmpty(lookup(EnvEditPlacement), fc.EditPlacement)

	if backend != "" {
		switch b := strings.ToLower(strings.TrimSpace(backend)); b {
		case BackendSQLite, BackendBolt:
			cfg.Backend = b
		default:
			return nil, fmt.Errorf("unknown backend: %s", backend)
		}
	}
	if priority != "" {
		p, err := tasklist.ParsePriority(priority)
		if err != nil {
			return nil, fmt.Errorf("default_priority: %w", err)
		}
		cfg.DefaultPriority = p
	}
	if placement != "" {
		p, err := tasklist.ParseEditPlacement(placement)
		if err != nil {
			return nil, fmt.Errorf("edit_placement: %w", err)
		}
		cfg.EditPlacement = p
	}
	cfg.DataFile = strings.TrimSpace(dataFile)

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// DataPath returns the database path for the selected backend.
func (c *Config) DataPath() string {
	if c.DataFile != "" {
		if filepath.IsAbs(c.DataFile) {
			return c.DataFile
		}
		return filepath.Join(c.Dir, c.DataFile)
	}
	if c.Backend == BackendBolt {
		return filepath.Join(c.Dir, "todo.bolt")
	}
	return filepath.Join(c.Dir, "todo.db")
}

// EnsureDir creates the config directory and the directory holding the
// data file, with mode 0700.
func (c *Config) EnsureDir() error {
	if err := os.MkdirAll(c.Dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.DataPath()), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	return fc, nil
}

// readEnvFile parses a dotenv file without touching the process environment.
func readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvFile, err)
	}
	return env, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
