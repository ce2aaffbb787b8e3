package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/crusade-api/internal/catalog"
	"github.com/KirkDiggler/crusade-api/internal/config"
	"github.com/KirkDiggler/crusade-api/internal/engine"
	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
	redisclient "github.com/KirkDiggler/crusade-api/internal/redis"
	"github.com/KirkDiggler/crusade-api/internal/repositories/lists"
)

const redisConnectTimeout = 5 * time.Second

// app holds the wired components shared by the server and CLI commands
type app struct {
	roster  roster.Service
	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

func setupLogging(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// buildApp wires catalog, store, engine and orchestrator from cfg.
// The returned app must be closed by the caller.
func buildApp(ctx context.Context, cfg *config.Config, notifier roster.Notifier) (*app, error) {
	a := &app{}

	var client redisclient.Client
	if cfg.UsesRedis() {
		var opts *redisclient.Options
		if cfg.RedisTLS {
			opts = &redisclient.Options{UseTLS: true}
		}
		c, err := redisclient.Connect(ctx, cfg.RedisAddr, opts, redisConnectTimeout)
		if err != nil {
			return nil, errors.Unavailablef("connect to redis: %v", err)
		}
		client = c
		a.closers = append(a.closers, c.Close)
	}

	lookup, err := buildCatalog(cfg, client)
	if err != nil {
		a.Close()
		return nil, err
	}

	repo, err := buildListRepo(ctx, cfg, client, a)
	if err != nil {
		a.Close()
		return nil, err
	}

	eng, err := engine.New(&engine.Config{WeaponLists: lookup})
	if err != nil {
		a.Close()
		return nil, err
	}

	svc, err := roster.NewOrchestrator(&roster.Config{
		Catalog:  lookup,
		ListRepo: repo,
		Engine:   eng,
		Notifier: notifier,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.roster = svc

	slog.Info("Components wired",
		"store", cfg.Store,
		"catalog", cfg.Catalog,
	)
	return a, nil
}

func buildCatalog(cfg *config.Config, client redisclient.Client) (catalog.Lookup, error) {
	if cfg.Catalog == config.CatalogRedis {
		c, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	c, err := catalog.NewEmbedded()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func buildListRepo(ctx context.Context, cfg *config.Config, client redisclient.Client, a *app) (lists.Repository, error) {
	if cfg.Store == config.StoreRedis {
		return lists.NewRedis(&lists.RedisConfig{Client: client})
	}

	store, err := lists.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, store.Close)
	return store, nil
}
