// @title                      hardlevel API
// @version                    1.0
// @BasePath                   /api/v1
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/adapters/ai"
	"github.com/hardlevel/hardlevel-core/internal/adapters/cache"
	"github.com/hardlevel/hardlevel-core/internal/adapters/database"
	adapterHTTP "github.com/hardlevel/hardlevel-core/internal/adapters/handler/http"
	"github.com/hardlevel/hardlevel-core/internal/adapters/repository"
	"github.com/hardlevel/hardlevel-core/internal/config"
	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
	"github.com/hardlevel/hardlevel-core/pkg/logger"
)

func main() {
	os.Exit(serve())
}

// serve returns the process exit code so deferred cleanup runs before os.Exit.
func serve() int {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet.
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      a.router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("hardlevel api listening", zap.String("addr", srv.Addr), zap.String("db_driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("stop signal received, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

type app struct {
	router *gin.Engine
	db     *sqlx.DB
	redis  *redis.Client
}

func (a *app) Close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	_ = a.db.Close()
}

func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DBDriver == database.DriverPostgres {
		return database.OpenPostgres(ctx, cfg.PostgresDSN, cfg.Pool())
	}
	return database.OpenSQLite(ctx, cfg.SQLitePath)
}

// newApp wires storage, AI adapters, services and the router.
func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := repository.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	var logRepo interface {
		domain.LogRepository
		domain.LogRangeReader
	} = repository.NewSQLLogRepository(db)

	var rdb *redis.Client
	if cfg.Redis().Enabled() {
		rdb, err = cache.NewRedisClient(cfg.Redis())
		if err != nil {
			// Cache and rate limiter are optional.
			log.Warn("redis unavailable, continuing without cache", zap.Error(err))
			rdb = nil
		} else {
			logRepo = repository.NewCachedLogRepository(logRepo, rdb, cfg.CacheTTL, log)
		}
	}

	avatarClient := ai.NewAvatarClient(ai.Options{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIImageModel,
		Timeout: cfg.AITimeout,
		Logger:  log,
	})
	journalClient := ai.NewJournalClient(ai.Options{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIChatModel,
		Timeout: cfg.AITimeout,
		Logger:  log,
	})

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authService := services.NewAuthService(domain.Owner{PasswordHash: cfg.OwnerPasswordHash}, tokenService)
	checklistService := services.NewChecklistService(logRepo)
	heatmapService := services.NewHeatmapService(logRepo)
	avatarService := services.NewAvatarService(avatarClient)
	journalService := services.NewJournalService(journalClient)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:      adapterHTTP.NewAuthHandler(authService, log),
		ChecklistHandler: adapterHTTP.NewChecklistHandler(checklistService, log),
		HeatmapHandler:   adapterHTTP.NewHeatmapHandler(heatmapService, log),
		AIHandler:        adapterHTTP.NewAIHandler(avatarService, journalService, log),
		TokenService:     tokenService,
		DB:               db,
		Redis:            rdb,
		RateLimit: adapterHTTP.RateLimit{
			Requests: cfg.RateLimitRequests,
			Window:   cfg.RateLimitWindow,
		},
		CORSOrigin: cfg.CORSOrigin,
		Logger:     log,
		StartTime:  time.Now(),
	})

	return &app{router: router, db: db, redis: rdb}, nil
}
