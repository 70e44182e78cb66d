package bootstrap

import (
	"context"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	accesscontrol "crewdesk/contexts/identity-access/access-control-service"
	accessmemory "crewdesk/contexts/identity-access/access-control-service/adapters/memory"
	accessredis "crewdesk/contexts/identity-access/access-control-service/adapters/redis"
	notificationhub "crewdesk/contexts/workforce-ops/notification-service"
	hubsqlite "crewdesk/contexts/workforce-ops/notification-service/adapters/sqlite"
	verification "crewdesk/contexts/workforce-ops/verification-service"
	verificationpostgres "crewdesk/contexts/workforce-ops/verification-service/adapters/postgres"
	"crewdesk/internal/platform/config"
	"crewdesk/internal/platform/db"
	"crewdesk/internal/platform/httpserver"
	platformredis "crewdesk/internal/platform/redis"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type core struct {
	accessControl accesscontrol.Module
	verification  verification.Module
	notifications notificationhub.Module

	postgres    *db.Postgres
	redisClient *goredis.Client
	hubStore    *hubsqlite.Store
}

type APIApp struct {
	server *httpserver.Server
	core   core
	logger *slog.Logger
}

type WorkerApp struct {
	core          core
	sweepInterval time.Duration
	logger        *slog.Logger
}

// buildCore wires the three modules. In-memory adapters are the default;
// each backing store upgrades independently when its config value is set.
func buildCore(ctx context.Context, cfg config.Config, logger *slog.Logger) (core, error) {
	c := core{}

	if strings.TrimSpace(cfg.SQLitePath) != "" {
		store, err := hubsqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return core{}, err
		}
		c.hubStore = store
		c.notifications = notificationhub.NewModule(notificationhub.Dependencies{
			Repository:  store,
			Clock:       hubsqlite.SystemClock{},
			IDGenerator: hubsqlite.UUIDGenerator{},
			Logger:      logger,
		})
	} else {
		c.notifications = notificationhub.NewInMemoryModule(logger)
	}

	sink := hubSink{push: c.notifications.Push}

	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err := db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			c.Close()
			return core{}, err
		}
		c.postgres = pg
		c.verification = verification.NewModule(verification.Dependencies{
			Repository:    verificationpostgres.NewRepository(pg.DB, logger),
			Clock:         verificationpostgres.SystemClock{},
			IDGenerator:   verificationpostgres.UUIDGenerator{},
			Notifications: sink,
			Logger:        logger,
		})
	} else {
		c.verification = verification.NewInMemoryModule(logger, sink)
	}

	accessStore := accessmemory.NewStore()
	accessDeps := accesscontrol.Dependencies{
		Catalog:            accessStore,
		PermissionCache:    accessStore,
		Clock:              accessStore,
		PermissionCacheTTL: 5 * time.Minute,
		Logger:             logger,
	}
	if strings.TrimSpace(cfg.RedisURL) != "" {
		client, err := platformredis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			c.Close()
			return core{}, err
		}
		c.redisClient = client
		accessDeps.PermissionCache = accessredis.NewCache(client)
	}
	c.accessControl = accesscontrol.NewModule(accessDeps)

	return c, nil
}

func (c core) Close() error {
	var firstErr error
	if c.postgres != nil {
		if err := c.postgres.Close(); err != nil {
			firstErr = err
		}
	}
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.hubStore != nil {
		if err := c.hubStore.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	c, err := buildCore(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	server := httpserver.New(
		c.accessControl,
		c.verification,
		c.notifications,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server: server,
		core:   c,
		logger: logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	c, err := buildCore(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	return &WorkerApp{
		core:          c,
		sweepInterval: cfg.ExpirySweepInterval,
		logger:        logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	return a.core.Close()
}

// Run sweeps overdue verification requests until the context is cancelled.
func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"sweep_interval", w.sweepInterval.String(),
	)

	for {
		if _, err := w.core.verification.Handler.ExpireOverdue.Execute(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	return w.core.Close()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
