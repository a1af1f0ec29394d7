// Package config loads pageorder settings.
//
// Settings are layered, later layers winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/pageorder/config.toml
//  3. PAGEORDER_* environment variables
//
// Command-line flags are applied on top by the CLI.
//
// Example config.toml:
//
//	mode = "all"
//	format = "text"
//	workers = 4
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[log]
//	level = "debug"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/bsaintjo/advent2024/pkg/errors"
	"github.com/bsaintjo/advent2024/pkg/pipeline"
)

// AppName names the config and cache directories.
const AppName = "pageorder"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PAGEORDER_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

var (
	formats  = []string{FormatText, FormatJSON, FormatYAML}
	backends = []string{BackendNone, BackendFile, BackendRedis}
)

// Config holds every setting.
type Config struct {
	Mode    string      `toml:"mode" env:"MODE"`
	Format  string      `toml:"format" env:"FORMAT"`
	Workers int         `toml:"workers" env:"WORKERS"`
	Cache   CacheConfig `toml:"cache" envPrefix:"CACHE_"`
	Log     LogConfig   `toml:"log" envPrefix:"LOG_"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend string        `toml:"backend" env:"BACKEND"`
	Dir     string        `toml:"dir" env:"DIR"`
	TTL     time.Duration `toml:"ttl" env:"TTL"`
	// Prefix namespaces keys, useful when several tools share one Redis.
	Prefix string      `toml:"prefix" env:"PREFIX"`
	Redis  RedisConfig `toml:"redis" envPrefix:"REDIS_"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:   string(pipeline.DefaultMode),
		Format: FormatText,
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     pipeline.DefaultTTL,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultPath returns the config file location following the XDG convention
// (~/.config/pageorder/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// DefaultCacheDir returns the file cache location following the XDG
// convention (~/.cache/pageorder).
func DefaultCacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the config file at path and applies environment overrides.
// An empty path uses [DefaultPath], where a missing file is not an error;
// an explicit path must exist.
func Load(path string) (Config, error) {
	return load(path, nil)
}

// load takes the environment as a map so tests need not touch the process
// environment. A nil map reads os.Environ.
func load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			switch {
			case os.IsNotExist(err) && !explicit:
			case os.IsNotExist(err):
				return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			default:
				return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
			}
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "environment")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown modes, formats, backends and log levels.
func (c *Config) Validate() error {
	if _, err := pipeline.ParseMode(c.Mode); err != nil {
		return err
	}
	if !slices.Contains(formats, c.Format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want text, json or yaml)", c.Format)
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if !slices.Contains(backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidBackend, "unknown cache backend %q (want none, file or redis)", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log level")
	}
	return nil
}

// LogLevel returns the parsed log level. Call after Validate.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// String renders the effective config as TOML with the redis password masked.
func (c Config) String() string {
	if c.Cache.Redis.Password != "" {
		c.Cache.Redis.Password = "********"
	}
	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("%+v", plainConfig(c))
	}
	return buf.String()
}

// plainConfig drops the String method so %+v formats fields directly.
type plainConfig Config
