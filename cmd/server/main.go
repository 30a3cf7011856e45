package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dicri/evidencetrack/internal/api"
	"github.com/dicri/evidencetrack/internal/core/security"
	"github.com/dicri/evidencetrack/internal/core/service"
	"github.com/dicri/evidencetrack/internal/infrastructure/config"
	"github.com/dicri/evidencetrack/internal/infrastructure/db/postgres"
	redisdb "github.com/dicri/evidencetrack/internal/infrastructure/db/redis"
	"github.com/dicri/evidencetrack/pkg/logger"
)

// @title        EvidenceTrack API
// @version      1.0
// @description  Case file and evidence tracking API.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.New(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	tokens := security.NewTokenService(cfg.JWTSecret, cfg.JWTExpiration)
	passwords := security.NewPasswordHasher(cfg.BcryptCost)

	e := api.NewRouter(api.RouterConfig{
		Logger: log,
		Tokens: tokens,
		AuthService: service.NewAuthService(
			postgres.NewAuthRepository(pool),
			tokens,
			passwords,
			redisdb.NewLoginThrottle(rdb),
		),
		CaseFiles:     service.NewCaseFileService(postgres.NewCaseFileRepository(pool)),
		EvidenceItems: service.NewEvidenceItemService(postgres.NewEvidenceItemRepository(pool)),
		Users:         service.NewUserService(postgres.NewUserRepository(pool), passwords),
		Roles:         service.NewRoleService(postgres.NewRoleRepository(pool)),
		Reports:       service.NewReportService(postgres.NewReportRepository(pool)),
		Pool:          pool,
		Redis:         rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
