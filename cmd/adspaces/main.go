package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adspaces/internal/backend"
	"adspaces/internal/cache"
	"adspaces/internal/cli"
	"adspaces/internal/currency"
	apphttp "adspaces/internal/http"
	applog "adspaces/internal/log"
	"adspaces/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	result, err := backend.NewFactory(logger).Build(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize record backend", applog.FieldError, err)
		os.Exit(1)
	}
	defer result.Close()

	// The server never publishes alerts; that is the worker's job.
	expService := services.NewExpirationService(result.Provider, nil, nil)
	revService := services.NewRevenueService(result.Provider, result.Provider)

	cacheManager := cache.NewManager()
	cacheManager.Register(expService.FeedCacheCleaner())
	cacheManager.StartCleanup(10 * time.Minute)
	defer cacheManager.Stop()

	srv := apphttp.NewServer(":"+cfg.Port, logger, expService, revService,
		currency.DefaultRegistry(), result.Repo.Preferences(), result.Provider)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting adspaces server", "port", cfg.Port, "backend", cfg.RecordBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
