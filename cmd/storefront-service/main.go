package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/api"
	"github.com/arkya-store/storefront-service/internal/api/middleware"
	"github.com/arkya-store/storefront-service/internal/cart"
	"github.com/arkya-store/storefront-service/internal/catalog"
	"github.com/arkya-store/storefront-service/internal/config"
	"github.com/arkya-store/storefront-service/internal/storage"
	"github.com/arkya-store/storefront-service/pkg/db"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	// pick the persistence backend
	var kv storage.KV
	switch cfg.StorageBackend {
	case "redis":
		rdb, err := storage.NewRedis(cfg.RedisAddr)
		if err != nil {
			logger.Fatal("redis connect", zap.Error(err))
		}
		defer rdb.Close()
		kv = rdb
	case "postgres":
		conn, err := db.NewPostgresConnection(db.LoadPostgresConfig())
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer conn.Close()
		if err := db.EnsureSchema(context.Background(), conn); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		kv = storage.NewPostgres(conn)
	default:
		kv = storage.NewMemory()
	}
	logger.Info("storage backend selected", zap.String("backend", cfg.StorageBackend))

	ctx := context.Background()
	store := catalog.NewStore(ctx, kv, logger)
	ledger := cart.NewLedger(ctx, kv, logger)

	handler := api.NewRouter(store, ledger, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Mount("/", handler)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server Shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting storefront-service", zap.String("addr", cfg.ServerAddr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
