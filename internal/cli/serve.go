package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/api"
	"github.com/matzehuels/boxflow/pkg/cache"
	"github.com/matzehuels/boxflow/pkg/pipeline"
	"github.com/matzehuels/boxflow/pkg/store"
)

// serveConfig holds the command-line flags for the serve command.
type serveConfig struct {
	addr     string
	redisURL string
	mongoURI string
	mongoDB  string
	noCache  bool
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	cfg := serveConfig{
		addr:    ":8080",
		mongoDB: appName,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout API server",
		Long: `Run the layout API server.

The server exposes the solve pipeline and a snapshot store over HTTP.
Without flags it uses the local file cache and an in-memory snapshot
store; pass --redis-url and --mongo-uri for shared deployments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.addr, "addr", cfg.addr, "listen address")
	cmd.Flags().StringVar(&cfg.redisURL, "redis-url", "", "redis URL for a shared result cache")
	cmd.Flags().StringVar(&cfg.mongoURI, "mongo-uri", "", "mongodb URI for snapshot persistence")
	cmd.Flags().StringVar(&cfg.mongoDB, "mongo-db", cfg.mongoDB, "mongodb database name")
	cmd.Flags().BoolVar(&cfg.noCache, "no-cache", false, "disable result caching")

	return cmd
}

// runServe wires the cache, store, and runner and serves until ctx is canceled.
func (c *CLI) runServe(ctx context.Context, cfg serveConfig) error {
	resultCache, err := c.newServeCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	snapshots, err := newServeStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() {
		if err := snapshots.Close(context.Background()); err != nil {
			c.Logger.Warn("close store", "err", err)
		}
	}()

	runner := pipeline.NewRunner(resultCache, nil, c.Logger)
	defer runner.Close()

	srv := api.NewServer(api.Config{Addr: cfg.addr}, runner, snapshots, c.Logger)

	printInfo("Serving layout API on %s", cfg.addr)
	return srv.Start(ctx)
}

// newServeCache picks the result cache backend for the server.
func (c *CLI) newServeCache(ctx context.Context, cfg serveConfig) (cache.Cache, error) {
	if cfg.redisURL != "" {
		c.Logger.Info("using redis cache", "url", cfg.redisURL)
		return cache.NewRedisCache(ctx, cfg.redisURL)
	}
	return newCache(cfg.noCache)
}

// newServeStore picks the snapshot store backend for the server.
func newServeStore(ctx context.Context, cfg serveConfig) (store.Store, error) {
	if cfg.mongoURI != "" {
		return store.NewMongoStore(ctx, cfg.mongoURI, cfg.mongoDB)
	}
	return store.NewMemoryStore(), nil
}
