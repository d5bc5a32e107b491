// Package cli implements the frogleap command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/elitelau/frog-leap-problem/pkg/buildinfo"
	"github.com/elitelau/frog-leap-problem/pkg/cache"
	"github.com/elitelau/frog-leap-problem/pkg/config"
	"github.com/elitelau/frog-leap-problem/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "frogleap"

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

	// Out receives solution output. Status lines and logs go to stderr.
	Out io.Writer

	configPath string
	cfg        *config.Config
}

// New creates a CLI writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Run without a subcommand, it prints every solution as text.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "frogleap solves the six-frog leap puzzle",
		Long: `frogleap enumerates every way to swap three left-moving and three
right-moving frogs across a row of seven positions, moving one frog per turn
into the single gap by a step or a jump over one other frog.`,
		Version:           buildinfo.Get().Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return c.setup(cmd) },
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), solveOpts{format: formatText})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/frogleap/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, applies its log level unless --verbose
// already raised it, and installs the logging hooks. A broken file given
// with --config is an error; a broken file at the default path is logged
// and replaced by the defaults.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		if c.configPath != "" {
			return err
		}
		c.Logger.Warn("ignoring config file, using defaults", "err", err)
		cfg = config.Default()
	}
	c.cfg = cfg

	if c.Logger.GetLevel() == LogInfo {
		if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
			c.Logger.SetLevel(level)
		}
	}

	hooks := &logHooks{logger: c.Logger}
	observability.SetSearchHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// openCache builds the configured backend, scoped to this build and
// reporting to the cache hooks. noCache forces the null backend.
func (c *CLI) openCache(ctx context.Context, keyType string, noCache bool) (cache.Cache, error) {
	opts := cache.Options{
		Backend:   c.cfg.Cache.Backend,
		Dir:       c.cfg.Cache.Dir,
		RedisAddr: c.cfg.Cache.RedisAddr,
	}
	if noCache {
		opts.Backend = cache.BackendNone
	}
	if opts.Dir == "" {
		dir, err := cacheDir()
		if err != nil {
			opts.Backend = cache.BackendNone
		}
		opts.Dir = dir
	}

	backend, err := cache.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cache.NewObserved(cache.NewScoped(backend, buildinfo.CacheScope()), keyType), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/frogleap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
