package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elitelau/frog-leap-problem/pkg/cache"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.cfg.Cache.Backend == cache.BackendNone {
				printWarning("Caching is disabled")
				return nil
			}

			dir := c.cfg.Cache.Dir
			if dir == "" {
				d, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				dir = d
			}

			ctx := cmd.Context()
			store, err := cache.Open(ctx, cache.Options{
				Backend:   c.cfg.Cache.Backend,
				Dir:       dir,
				RedisAddr: c.cfg.Cache.RedisAddr,
			})
			if err != nil {
				return err
			}
			defer store.Close()

			clearer, ok := store.(cache.Clearer)
			if !ok {
				printWarning("The %s backend cannot be cleared", c.cfg.Cache.Backend)
				return nil
			}
			n, err := clearer.Clear(ctx)
			if err != nil {
				return err
			}

			if n == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", n)
			if c.cfg.Cache.Backend == cache.BackendRedis {
				printDetail("Redis: %s", c.cfg.Cache.RedisAddr)
			} else {
				printDetail("Directory: %s", dir)
			}
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where cached artifacts are stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.cfg.Cache.Backend {
			case cache.BackendRedis:
				fmt.Fprintf(c.Out, "redis://%s/%s\n", c.cfg.Cache.RedisAddr, cache.DefaultNamespace)
				return nil
			case cache.BackendNone:
				printWarning("Caching is disabled")
				return nil
			}

			dir := c.cfg.Cache.Dir
			if dir == "" {
				d, err := cacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				dir = d
			}
			fmt.Fprintln(c.Out, dir)
			return nil
		},
	}
}
