// Package config resolves where pocketflow keeps its data and how it logs.
// Interval durations are fixed at build time and are not configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "POCKETFLOW"
	configName = "config"
	appDirName = "pocket_flow"
	dbFileName = "sessions.db"
	logName    = "pocketflow.log"
)

// Config holds the resolved settings.
type Config struct {
	DBPath   string `mapstructure:"db_path"`
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Loader reads settings from defaults, an optional config.yaml in the
// application directory, POCKETFLOW_* environment variables and bound flags,
// in increasing order of precedence.
type Loader struct {
	v    *viper.Viper
	home func() (string, error)
}

// NewLoader returns a Loader that resolves the home directory with
// os.UserHomeDir.
func NewLoader() *Loader {
	return &Loader{v: viper.New(), home: os.UserHomeDir}
}

// WithHome overrides home directory resolution.
func (l *Loader) WithHome(home func() (string, error)) *Loader {
	l.home = home
	return l
}

// BindFlags registers the persistent flags that override configuration.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	fs.String("db", "", "path to the session database")
	fs.String("log-file", "", "path to the diagnostic log")
	fs.String("log-level", "", "diagnostic log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		"db_path":   "db",
		"log_file":  "log-file",
		"log_level": "log-level",
	} {
		if err := l.v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load resolves the configuration. A home directory that cannot be resolved
// is an error since the default storage location depends on it.
func (l *Loader) Load() (*Config, error) {
	home, err := l.home()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	appDir := AppDir(home)

	v := l.v
	v.SetDefault("db_path", filepath.Join(appDir, dbFileName))
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(appDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(filepath.Dir(cfg.DBPath), logName)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AppDir is the fixed per-user application data directory.
func AppDir(home string) string {
	return filepath.Join(home, "Library", "Application Support", appDirName)
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	lvl, _ := ParseLevel(c.LogLevel)
	return lvl
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}
