// Package cli implements the cosmos command-line interface.
//
// The CLI queries the structural catalog and the counting engines behind
// it: Matula codes, Dyck words, Pascal rows, simplex faces and nested
// expressions. Expensive results go through a [query.Runner] and its result
// cache. Commands print styled text by default and JSON or YAML with
// --format.
//
// # Commands
//
//   - summary: tables of all six levels
//   - analyze: the full snapshot of one level
//   - matula: encode bracket text or decode Matula numbers
//   - partitions: enumerate Dyck words
//   - pascal, simplex, nested, rooted: counting tables
//   - browse: interactive catalog browser
//   - serve: HTTP API
//   - cache: manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The level
// otherwise comes from the log.level setting.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cosmos/internal/config"
	"github.com/matzehuels/cosmos/pkg/buildinfo"
	"github.com/matzehuels/cosmos/pkg/cache"
	"github.com/matzehuels/cosmos/pkg/query"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cosmos"

	// redisKeyPrefix scopes cosmos entries in a shared Redis.
	redisKeyPrefix = "cosmos:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	refresh    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Cosmos maps rooted trees between Matula codes, brackets and counting tables",
		Long:         `Cosmos is a combinatorial encoding engine. It converts rooted trees between Matula numbers and bracket text, enumerates Dyck words, counts simplex faces with Pascal's triangle, and analyzes the six structural levels built from them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.SetLogLevel(cfg.LogLevel())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cosmos/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the result cache")
	root.PersistentFlags().BoolVar(&c.refresh, "refresh", false, "recompute results and refresh the cache")

	// Register all subcommands
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.matulaCommand())
	root.AddCommand(c.partitionsCommand())
	root.AddCommand(c.pascalCommand())
	root.AddCommand(c.simplexCommand())
	root.AddCommand(c.nestedCommand())
	root.AddCommand(c.rootedCommand())
	root.AddCommand(c.stateCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// settings returns the loaded configuration, or the defaults when a command
// runs without the root pre-run (tests).
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a query runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*query.Runner, error) {
	cfg := c.settings()
	store, keyer, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	r := query.NewRunner(store, keyer, c.Logger)
	r.TTL = cfg.Cache.TTL
	r.MaxPartitions = cfg.Limits.MaxPartitions
	r.MaxMatula = cfg.Limits.MaxMatula
	r.Refresh = c.refresh
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, cfg *config.Config) (cache.Cache, cache.Keyer, error) {
	if c.noCache {
		return cache.NewNullCache(), nil, nil
	}
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		store, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:        cfg.Cache.RedisAddr,
			Password:    cfg.Cache.RedisPassword,
			DB:          cfg.Cache.RedisDB,
			DialTimeout: 5 * time.Second,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Cache.RedisAddr, err)
		}
		return store, cache.NewScopedKeyer(nil, redisKeyPrefix), nil
	case config.BackendFile:
		store, err := cache.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, continuing without cache", "dir", cfg.Cache.Dir, "err", err)
			return cache.NewNullCache(), nil, nil
		}
		return store, nil, nil
	default:
		return cache.NewNullCache(), nil, nil
	}
}
