// Package config resolves the data directory, file paths and settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// DefaultDBFile is the database filename inside the data directory.
	DefaultDBFile = "tasklist.db"

	// DefaultLogFile is the UI log filename inside the data directory.
	DefaultLogFile = "tasklist.log"
)

// Env holds settings read from the environment.
type Env struct {
	DataDir string `env:"TASKLIST_DATA_DIR" env-default:""`
	DBFile  string `env:"TASKLIST_DB_FILE" env-default:"tasklist.db"`
	LogFile string `env:"TASKLIST_LOG_FILE" env-default:"tasklist.log"`
	Debug   bool   `env:"TASKLIST_DEBUG" env-default:"false"`
}

// Config holds paths and settings.
type Config struct {
	// Dir is the data directory path.
	Dir string

	// DBFile is the database filename, or an absolute path.
	DBFile string

	// LogFile is the log filename, or an absolute path.
	LogFile string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config from the environment. A non-empty dataDir
// overrides TASKLIST_DATA_DIR and the XDG default.
func New(dataDir string) (*Config, error) {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	dir := dataDir
	if dir == "" {
		dir = env.DataDir
	}
	if dir == "" {
		dir = DefaultDataDir()
	}

	return &Config{
		Dir:     dir,
		DBFile:  orDefault(env.DBFile, DefaultDBFile),
		LogFile: orDefault(env.LogFile, DefaultLogFile),
		Debug:   env.Debug,
	}, nil
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DBPath returns the path to the database file.
func (c *Config) DBPath() string {
	return c.resolve(orDefault(c.DBFile, DefaultDBFile))
}

// LogPath returns the path to the log file.
func (c *Config) LogPath() string {
	return c.resolve(orDefault(c.LogFile, DefaultLogFile))
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
