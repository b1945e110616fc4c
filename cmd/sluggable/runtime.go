package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sluggable"
	"github.com/dmitrymomot/sluggable/pkg/logger"
	"github.com/dmitrymomot/sluggable/pkg/memstore"
	"github.com/dmitrymomot/sluggable/pkg/pgstore"
	"github.com/dmitrymomot/sluggable/pkg/slugcache"
	"github.com/dmitrymomot/sluggable/pkg/slugroute"
)

// requirements says which services a command cannot run without.
type requirements struct {
	registry bool
	database bool
}

// runtime is the set of services shared by the commands.
type runtime struct {
	log      *slog.Logger
	registry *sluggable.Registry
	store    sluggable.Store
	pool     *pgxpool.Pool
	repo     *sluggable.Repository
	checks   slugroute.Checks
	closers  []func()
}

func newLogger(opts *RootOptions, stderr io.Writer, level slog.Level) *slog.Logger {
	if opts.Verbose {
		level = slog.LevelDebug
	}
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		return logger.NewWithSentry(logger.SentryConfig{
			DSN:         dsn,
			Environment: os.Getenv("SENTRY_ENVIRONMENT"),
			MinLevel:    slog.LevelWarn,
		}, slugroute.RequestIDExtractor())
	}
	return logger.NewWithWriter(stderr, level, slugroute.RequestIDExtractor())
}

// openRuntime connects what opts describe. Without a database URL documents
// live in memory for the lifetime of the process.
func openRuntime(ctx context.Context, opts *RootOptions, log *slog.Logger, req requirements) (*runtime, error) {
	rt := &runtime{log: log, checks: slugroute.Checks{}}

	if opts.ConfigPath != "" {
		reg, err := sluggable.LoadRegistryFile(opts.ConfigPath)
		if err != nil {
			return nil, commandError("load config", err)
		}
		rt.registry = reg
	} else if req.registry {
		return nil, commandError("no type registry: pass --config or set SLUGGABLE_CONFIG", nil)
	} else {
		rt.registry = sluggable.NewRegistry()
	}

	switch {
	case opts.DatabaseURL != "":
		cfg := pgstore.DefaultConfig(opts.DatabaseURL)
		cfg.RetryAttempts = 1
		pool, err := pgstore.Connect(ctx, cfg)
		if err != nil {
			return nil, commandError("connect to database", err)
		}
		rt.pool = pool
		rt.store = pgstore.New(pool, pgstore.WithLogger(log))
		rt.checks["postgres"] = pgstore.Healthcheck(pool)
		rt.closers = append(rt.closers, pool.Close)
	case req.database:
		return nil, commandError("no database: pass --database-url or set SLUGGABLE_DATABASE_URL", nil)
	default:
		log.Warn("no database configured, documents are kept in memory")
		rt.store = memstore.New(memstore.WithUniqueSlugs(rt.registry))
	}

	cache, err := openCache(ctx, opts, rt)
	if err != nil {
		rt.Close()
		return nil, err
	}

	rt.repo = sluggable.NewRepository(rt.registry, rt.store,
		sluggable.WithLogger(log),
		sluggable.WithResolverOptions(sluggable.WithCache(cache, 0)),
	)
	return rt, nil
}

func openCache(ctx context.Context, opts *RootOptions, rt *runtime) (slugcache.Cache, error) {
	if opts.RedisURL == "" {
		mem := slugcache.NewMemory()
		rt.closers = append(rt.closers, func() { _ = mem.Close() })
		return mem, nil
	}

	client, err := slugcache.OpenRedis(ctx, opts.RedisURL, slugcache.WithRetry(1, 0))
	if err != nil {
		return nil, commandError("connect to redis", err)
	}
	cache := slugcache.NewRedis(client)
	rt.checks["redis"] = cache.Healthcheck
	rt.closers = append(rt.closers, func() { _ = client.Close() })
	return cache, nil
}

// Close releases connections in reverse order of opening.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}

// requirePool returns the Postgres pool or a command error naming the command.
func (rt *runtime) requirePool(command string) (*pgxpool.Pool, error) {
	if rt.pool == nil {
		return nil, commandError(command, errors.New("requires --database-url"))
	}
	return rt.pool, nil
}
