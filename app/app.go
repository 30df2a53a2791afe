// File: app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bankist/config"
	"bankist/db"
	"bankist/handler"
	"bankist/logger"
	"bankist/metrics"
	"bankist/repository"
	"bankist/router"
	"bankist/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App holds the wired layers behind one HTTP handler.
type App struct {
	Router   http.Handler
	Repo     repository.IAccountRepository
	Auth     *service.AuthService
	Sessions *service.SessionManager
}

// New wires sessions, handlers and routes over repo. Action counters are
// registered on reg, which also backs /metrics. Sessions expire after
// sessionTTL, which should match the token lifetime.
func New(repo repository.IAccountRepository, auth *service.AuthService, reg *prometheus.Registry, clock func() time.Time, sessionTTL time.Duration) *App {
	collector := metrics.NewCollector("bankist", reg)

	sessions := service.NewSessionManager(func() *service.Session {
		return service.NewSession(repo, auth,
			service.WithClock(clock),
			service.WithObserver(collector),
		)
	}, service.WithSessionTTL(sessionTTL), service.WithManagerClock(clock))

	sessionHandler := handler.NewSessionHandler(auth, sessions)
	accountHandler := handler.NewAccountHandler(sessions)
	r := router.NewRouter(
		handler.NewHealthHandler(sessions),
		sessionHandler,
		accountHandler,
		handler.AuthMiddleware(auth, sessions),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)

	return &App{Router: r, Repo: repo, Auth: auth, Sessions: sessions}
}

// openStore builds the account store named by the config. The returned
// cleanup releases any connections it opened.
func openStore(cfg config.Config) (repository.IAccountRepository, func(), error) {
	var (
		repo    repository.IAccountRepository
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.Storage.Backend {
	case "postgres":
		database, err := db.Connect()
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() { database.Close() })
		if err := db.Migrate(database, cfg.Database.Migrations); err != nil {
			return nil, cleanup, err
		}
		repo = repository.NewAccountRepository(database)
	default:
		repo = repository.NewMemoryAccountRepository()
	}

	if cfg.Redis.Enabled {
		rdb, err := db.ConnectRedis()
		if err != nil {
			return nil, cleanup, err
		}
		closers = append(closers, func() { rdb.Close() })
		repo = repository.NewCachedAccountRepository(repo, rdb, cfg.Redis.TTL)
	}

	return repo, cleanup, nil
}

const sweepInterval = time.Minute

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	if err := run(config.AppConfig); err != nil {
		logger.Log.Fatalf("Server stopped: %v", err)
	}
	logger.Log.Info("Server exited properly")
}

// run serves until SIGINT or SIGTERM. Every connection it opens is closed
// before it returns.
func run(cfg config.Config) error {
	repo, cleanup, err := openStore(cfg)
	defer cleanup()
	if err != nil {
		return fmt.Errorf("error opening the account store: %w", err)
	}
	logger.Log.WithField("backend", cfg.Storage.Backend).Info("Account store ready")

	auth := service.NewAuthService(cfg.JWT.SecretKey, cfg.JWT.TTL, cfg.Security.BcryptCost)
	if err := service.SeedAccounts(context.Background(), repo, auth, time.Now(), service.DefaultSeed); err != nil {
		return fmt.Errorf("error seeding accounts: %w", err)
	}
	if accounts, err := repo.GetAllAccounts(context.Background()); err == nil {
		logger.Log.WithField("accounts", len(accounts)).Info("Accounts available")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a := New(repo, auth, reg, time.Now, cfg.JWT.TTL)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go a.Sessions.RunSweeper(sweepCtx, sweepInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: a.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Infof("Server starting on port :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
