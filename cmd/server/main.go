// Command server runs the NS Stores back-office API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nethupa05/NS-Stores-Backend/internal/config"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/auth"
	v1 "github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/http/v1"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal(context.Background(), "load config failed", "error", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		logger.Fatal(context.Background(), "init logger failed", "error", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)

	if cfg.JWT.Secret == "" {
		logger.Fatal(ctx, "JWT_SECRET is required")
	}
	if cfg.Database.DSN == "" {
		logger.Fatal(ctx, "DATABASE_DSN is required")
	}

	poolCfg := postgres.DefaultPoolConfig(cfg.Database.DSN)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		logger.Fatal(ctx, "connect database failed", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		logger.Fatal(ctx, "init audit service failed", "error", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
	})

	router := v1.NewRouter(v1.RouterConfig{
		Pool:      pool,
		TxManager: txManager,
		Logger:    log,
		JWT:       jwtService,
		Recorder:  auditService,
		History:   auditService,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "server failed", "error", err)
		}
	}()
	logger.Info(ctx, "server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "graceful shutdown failed", "error", err)
	}
	logger.Info(ctx, "server stopped")
}
