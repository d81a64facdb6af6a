package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	v1 "go-chatline/cmd/api/router/v1"
	"go-chatline/internal/config"
	cacheadapter "go-chatline/internal/infrastructure/cache/adapter"
	"go-chatline/internal/infrastructure/database"
	queueadapter "go-chatline/internal/infrastructure/queue/adapter"
	"go-chatline/internal/infrastructure/realtime"
	storageadapter "go-chatline/internal/infrastructure/storage/adapter"
	"go-chatline/internal/pkg/auth"
	"go-chatline/internal/pkg/chat/search"
	"go-chatline/internal/pkg/user/application/task"
	userusecase "go-chatline/internal/pkg/user/application/usecase"
	useradapter "go-chatline/internal/pkg/user/persistence/repository/adapter"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	if err := run(log); err != nil {
		log.Error("api exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := database.Connect(connectCtx, cfg.DBURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	cache, err := cacheadapter.NewRedisCache(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer func() { _ = cache.Close() }()

	queue, err := queueadapter.NewAsynqClient(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer func() { _ = queue.Close() }()

	workers, err := queueadapter.NewAsynqServer(cfg.RedisURL, cfg.Concurrency, log)
	if err != nil {
		return err
	}
	task.RegisterSyncUser(workers, userusecase.NewSyncUserUseCase(useradapter.NewPgUserRepository(pool)))

	index, err := search.Open(cfg.SearchIndexDir)
	if err != nil {
		return err
	}
	defer func() { _ = index.Close() }()

	router := realtime.NewRouter(log)
	defer router.Close()

	r := gin.Default()
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	v1.RegisterRoutes(r, v1.Deps{
		Pool:         pool,
		Queue:        queue,
		Cache:        cache,
		Realtime:     router,
		Index:        index,
		Blobs:        storageadapter.NewFilesystemStore(cfg.MediaRoot, log),
		Verifier:     auth.NewVerifier(cfg.JWTSecret),
		UserCacheTTL: cfg.UserCacheTTL,
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}

	errc := make(chan error, 2)
	go func() {
		log.Info("workers started", "concurrency", cfg.Concurrency)
		errc <- workers.Run(ctx)
	}()
	go func() {
		log.Info("http server started", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
			return
		}
		errc <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errc:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", "error", err)
	}
	_ = workers.Stop(shutdownCtx)
	return nil
}
