package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bloglist-lab/bloglist/internal/auth"
	"github.com/bloglist-lab/bloglist/internal/blogs"
	corecfg "github.com/bloglist-lab/bloglist/internal/core/config"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/bloglist-lab/bloglist/internal/core/storage/memory"
	"github.com/bloglist-lab/bloglist/internal/core/storage/postgres"
	"github.com/bloglist-lab/bloglist/internal/migrations"
	"github.com/bloglist-lab/bloglist/internal/seed"
	"github.com/bloglist-lab/bloglist/internal/server"
	"github.com/bloglist-lab/bloglist/internal/stats"
	"github.com/bloglist-lab/bloglist/internal/users"
)

// backend is what both storage implementations provide.
type backend interface {
	storage.Store
	server.HealthChecker
}

func main() {
	configPath := flag.String("config", "bloglist.yaml", "Path to configuration file")
	seedPath := flag.String("seed", "", "Path to YAML seed fixtures (overrides seed.path)")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *seedPath != "" {
		cfg.Seed.Path = *seedPath
	}
	slog.Info("Loaded config",
		"addr", cfg.Server.Addr(),
		"mode", cfg.Server.Mode,
		"database", cfg.Database.Type,
		"token_ttl", cfg.Auth.TokenTTL,
		"seed", cfg.Seed.Path)

	// 2. Initialize Storage
	store, closeStore, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 3. Initialize Services
	authSvc := auth.NewService(store, cfg.Auth.Secret, cfg.Auth.TokenTTL, cfg.Auth.BcryptCost)
	userSvc := users.NewService(store, store, authSvc)
	blogSvc := blogs.NewService(store, store, authSvc.UserExtractor(), cfg.Server.MaxBodySizeMB)
	statsSvc := stats.NewService(store, cfg.Server.MaxBodySizeMB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3.1. Load Seed Fixtures
	if cfg.Seed.Path != "" {
		fixtures, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			slog.Error("Failed to load seed fixtures", "error", err)
			os.Exit(1)
		}
		if err := seed.Apply(ctx, fixtures, userSvc, store); err != nil {
			slog.Error("Failed to apply seed fixtures", "error", err)
			os.Exit(1)
		}
	}

	// 4. Initialize Server
	srv := server.New(cfg.Server.Addr(), store, cfg.Server.Mode, cfg.Server.CORSOrigins)
	authSvc.RegisterRoutes(srv.Engine)
	userSvc.RegisterRoutes(srv.Engine)
	blogSvc.RegisterRoutes(srv.Engine)
	statsSvc.RegisterRoutes(srv.Engine)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// openStore connects the configured backend. For postgres it runs migrations
// before preparing statements.
func openStore(cfg corecfg.DatabaseConfig) (backend, func(), error) {
	if cfg.Type == corecfg.DatabaseMemory {
		slog.Warn("Using in-memory storage; data is lost on exit")
		return memory.NewStore(), func() {}, nil
	}

	dbAdapter, err := postgres.NewAdapter(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := dbAdapter.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}

	if err := migrations.RunMigrations(dbAdapter.DB(), cfg.AutoMigrate); err != nil {
		closeFn()
		return nil, nil, err
	}
	if err := dbAdapter.Prepare(); err != nil {
		closeFn()
		return nil, nil, err
	}
	return dbAdapter, closeFn, nil
}
