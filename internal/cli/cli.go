// Package cli implements the pageorder command-line interface.
//
// # Commands
//
//   - check: sum the middle pages of sequences that already satisfy the rules
//   - fix: reorder the failing sequences and sum their middle pages
//   - solve: full per-sequence report in text, JSON or YAML
//   - lint: report rule cycles and sequences the rules cannot fully order
//   - graph: draw the rules as a DOT or SVG diagram
//   - cache: inspect or clear the result cache
//
// Every command reading input accepts a file path or "-" for stdin.
// Settings come from the config file and PAGEORDER_* variables (see
// internal/config); flags override both.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bsaintjo/advent2024/internal/config"
	"github.com/bsaintjo/advent2024/pkg/buildinfo"
	"github.com/bsaintjo/advent2024/pkg/cache"
	"github.com/bsaintjo/advent2024/pkg/errors"
	"github.com/bsaintjo/advent2024/pkg/observability"
	"github.com/bsaintjo/advent2024/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// stdinPath is the FILE argument that reads standard input.
const stdinPath = "-"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a CLI logging to w at level, with default settings until the
// root command loads the config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pageorder",
		Short: "Check and repair page sequences against ordering rules",
		Long: `pageorder reads a list of "A|B" ordering rules followed by comma-separated
page sequences, checks each sequence against the rules, reorders the ones that
break them and sums the middle pages.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pageorder/config.toml)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.fixCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.lintCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads settings, applies the configured log level and routes
// pipeline events to the debug log.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.SetLogLevel(cfg.LogLevel())

	hooks := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)

	c.Logger.Debug("loaded config", "mode", cfg.Mode, "backend", cfg.Cache.Backend)
	c.Logger.Debug("effective config\n" + cfg.String())
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
// The caller must close the returned cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, cache.Cache, error) {
	store, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, nil, err
	}

	var keyer cache.Keyer
	if c.Config.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, c.Config.Cache.Prefix)
	}
	r := pipeline.NewRunner(store, keyer, c.Logger)
	r.TTL = c.Config.Cache.TTL
	return r, store, nil
}

// openCache opens the configured backend. An unreachable Redis degrades to
// no caching with a warning.
func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cc := c.Config.Cache
	if noCache || cc.Backend == config.BackendNone {
		return cache.NewNullCache(), nil
	}

	switch cc.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cc.Redis.Addr,
			Password: cc.Redis.Password,
			DB:       cc.Redis.DB,
		})
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", cc.Redis.Addr, "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the configured file cache directory or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.Config.Cache.Dir != "" {
		return c.Config.Cache.Dir, nil
	}
	return config.DefaultCacheDir()
}

// =============================================================================
// Input
// =============================================================================

// readInput reads the FILE argument, with "-" meaning the command's stdin.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// run reads the input at path and executes the pipeline.
func (c *CLI) run(cmd *cobra.Command, path string, opts pipeline.Options, noCache bool) (*pipeline.Result, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	runner, store, err := c.newRunner(ctx, noCache)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return runner.Execute(ctx, data, opts)
}
