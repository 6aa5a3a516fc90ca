// Package config loads cosmos settings.
//
// Sources, in increasing precedence:
//   - built-in defaults
//   - a TOML file ($XDG_CONFIG_HOME/cosmos/config.toml, or --config)
//   - a .env file in the working directory
//   - COSMOS_* environment variables
//
// A config file looks like:
//
//	[log]
//	level = "debug"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
//	[limits]
//	max_partitions = 14
//	max_matula = 1000000
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	appName   = "cosmos"
	envPrefix = "COSMOS_"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete application configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Limits LimitsConfig `toml:"limits"`
}

// LogConfig configures the charm logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	TTL           time.Duration `toml:"ttl"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LimitsConfig bounds request sizes on the outer surfaces. The core
// packages impose no limits of their own.
type LimitsConfig struct {
	// MaxPartitions caps n for partition enumeration; 0 disables the cap.
	MaxPartitions int `toml:"max_partitions"`
	// MaxMatula caps the Matula numbers accepted for decoding; 0 disables
	// the cap.
	MaxMatula int `toml:"max_matula"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Cache: CacheConfig{
			Backend: BackendFile,
			Dir:     defaultCacheDir(),
			TTL:     7 * 24 * time.Hour,
		},
		Server: ServerConfig{Addr: ":8080"},
		Limits: LimitsConfig{MaxPartitions: 14, MaxMatula: 1_000_000},
	}
}

// Load reads the configuration. An empty path means the default location,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	return load(path, ".env", os.LookupEnv)
}

func load(path, envFile string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(env func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := env(envPrefix + name); ok {
			*dst = v
		}
	}
	str("LOG_LEVEL", &c.Log.Level)
	str("CACHE_BACKEND", &c.Cache.Backend)
	str("CACHE_DIR", &c.Cache.Dir)
	str("CACHE_REDIS_ADDR", &c.Cache.RedisAddr)
	str("CACHE_REDIS_PASSWORD", &c.Cache.RedisPassword)
	str("SERVER_ADDR", &c.Server.Addr)

	if v, ok := env(envPrefix + "CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sCACHE_TTL: %w", envPrefix, err)
		}
		c.Cache.TTL = d
	}
	for name, dst := range map[string]*int{
		"CACHE_REDIS_DB":        &c.Cache.RedisDB,
		"LIMITS_MAX_PARTITIONS": &c.Limits.MaxPartitions,
		"LIMITS_MAX_MATULA":     &c.Limits.MaxMatula,
	} {
		v, ok := env(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Cache.Backend {
	case BackendFile:
		if c.Cache.Dir == "" {
			return errors.New("cache.dir: required for the file backend")
		}
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New("cache.redis_addr: required for the redis backend")
		}
	case BackendNone:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl: must be positive, got %s", c.Cache.TTL)
	}
	if c.Limits.MaxPartitions < 0 {
		return fmt.Errorf("limits.max_partitions: must be >= 0, got %d", c.Limits.MaxPartitions)
	}
	if c.Limits.MaxMatula < 0 {
		return fmt.Errorf("limits.max_matula: must be >= 0, got %d", c.Limits.MaxMatula)
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c *Config) LogLevel() log.Level {
	l, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// DefaultPath returns $XDG_CONFIG_HOME/cosmos/config.toml, falling back to
// ~/.config. It is empty when no home directory is known.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// defaultCacheDir follows the XDG standard (~/.cache/cosmos/).
func defaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cache", appName)
}
