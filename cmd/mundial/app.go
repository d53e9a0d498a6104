package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohammad-safakhou/mundial/config"
	"github.com/mohammad-safakhou/mundial/internal/memory"
	"github.com/mohammad-safakhou/mundial/internal/source"
	"github.com/mohammad-safakhou/mundial/internal/telemetry"
	"github.com/mohammad-safakhou/mundial/internal/workflow"
)

// app holds everything a command needs once the config is resolved.
type app struct {
	cfg     *config.Config
	src     *source.Client
	store   memory.Store
	eng     *workflow.Engine
	tel     *telemetry.Telemetry
	rdb     *redis.Client
	closers []func()
}

// buildApp wires cache, source client, store and engine from the config.
func buildApp(cfgPath string) (*app, error) {
	cfg := config.LoadConfig(cfgPath)
	a := &app{cfg: cfg, tel: telemetry.New()}

	var cache source.Cache
	switch cfg.Cache.Backend {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := source.NewRedisClient(ctx, cfg.Cache.Redis)
		cancel()
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		a.rdb = rdb
		a.closers = append(a.closers, func() { _ = a.rdb.Close() })
		cache = source.NewRedisCache(a.rdb, cfg.Cache.TTL())
	default:
		fc, err := source.NewFileCache(cfg.Cache.Dir, cfg.Cache.TTL())
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open cache: %w", err)
		}
		cache = fc
	}

	a.src = source.NewClient(cfg.Sources, cache)
	a.src.Observe(a.tel)

	switch cfg.Storage.Backend {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pg, err := memory.NewPostgres(ctx, cfg.Storage.Postgres.DSN())
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		a.closers = append(a.closers, func() { _ = pg.Close() })
		a.store = pg
	default:
		fs, err := memory.NewFileStore(cfg.Storage.File.Path)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("open file store: %w", err)
		}
		a.store = fs
	}

	a.eng = workflow.NewEngine(a.store, a.src, a.tel, cfg.Workflow.MaxSteps, cfg.Sources.ReportsDir)
	return a, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
