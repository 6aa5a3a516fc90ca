package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, BackendFile, cfg.Cache.Backend)
	require.Equal(t, 7*24*time.Hour, cfg.Cache.TTL)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 14, cfg.Limits.MaxPartitions)
	require.Equal(t, 1_000_000, cfg.Limits.MaxMatula)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CACHE_HOME", dir)

	cfg, err := load("", filepath.Join(dir, ".env"), noEnv)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cosmos"), cfg.Cache.Dir)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := load(filepath.Join(dir, "nope.toml"), filepath.Join(dir, ".env"), noEnv)
	require.Error(t, err)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[log]
level = "debug"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
redis_db = 2
ttl = "24h"

[server]
addr = "127.0.0.1:9000"

[limits]
max_partitions = 10
`)
	cfg, err := load(path, filepath.Join(dir, ".env"), noEnv)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, log.DebugLevel, cfg.LogLevel())
	require.Equal(t, BackendRedis, cfg.Cache.Backend)
	require.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	require.Equal(t, 2, cfg.Cache.RedisDB)
	require.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, 10, cfg.Limits.MaxPartitions)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[server]
addr = ":1111"

[limits]
max_partitions = 5
`)
	envFile := writeFile(t, dir, ".env", `
COSMOS_SERVER_ADDR=:2222
COSMOS_LIMITS_MAX_PARTITIONS=6
COSMOS_CACHE_BACKEND=none
`)

	cfg, err := load(path, envFile, envMap(map[string]string{
		"COSMOS_LIMITS_MAX_PARTITIONS": "7",
		"COSMOS_LIMITS_MAX_MATULA":     "5000",
		"COSMOS_CACHE_TTL":             "90m",
	}))
	require.NoError(t, err)
	require.Equal(t, ":2222", cfg.Server.Addr, ".env overrides the file")
	require.Equal(t, 7, cfg.Limits.MaxPartitions, "environment overrides .env")
	require.Equal(t, 5000, cfg.Limits.MaxMatula)
	require.Equal(t, BackendNone, cfg.Cache.Backend)
	require.Equal(t, 90*time.Minute, cfg.Cache.TTL)
}

func TestLoadBadEnvValues(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	tests := map[string]string{
		"COSMOS_CACHE_TTL":             "soon",
		"COSMOS_LIMITS_MAX_PARTITIONS": "many",
		"COSMOS_CACHE_REDIS_DB":        "x",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := load(filepath.Join(dir, "missing.toml"), envFile, envMap(map[string]string{key: val}))
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }, false},
		{"redis without addr", func(c *Config) { c.Cache.Backend = BackendRedis }, false},
		{"file without dir", func(c *Config) { c.Cache.Dir = "" }, false},
		{"none needs nothing", func(c *Config) { c.Cache.Backend = BackendNone; c.Cache.Dir = "" }, true},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }, false},
		{"negative limit", func(c *Config) { c.Limits.MaxPartitions = -1 }, false},
		{"no limit", func(c *Config) { c.Limits.MaxPartitions = 0 }, true},
		{"negative matula cap", func(c *Config) { c.Limits.MaxMatula = -1 }, false},
		{"no matula cap", func(c *Config) { c.Limits.MaxMatula = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Cache.Dir = "/tmp/cosmos-test"
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	require.Equal(t, filepath.Join("/xdg", "cosmos", "config.toml"), DefaultPath())
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".cache", "cosmos"), defaultCacheDir())

	t.Setenv("XDG_CACHE_HOME", "/xdg-cache")
	require.Equal(t, filepath.Join("/xdg-cache", "cosmos"), defaultCacheDir())
}
