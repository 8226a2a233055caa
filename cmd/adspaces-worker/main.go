package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"adspaces/internal/amqp"
	"adspaces/internal/backend"
	"adspaces/internal/cli"
	applog "adspaces/internal/log"
	"adspaces/internal/services"
	"adspaces/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(applog.ComponentWorker)
	logger.Info("Starting adspaces-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	result, err := backend.NewFactory(logger).Build(context.Background(), cfg)
	if err != nil {
		logger.Error("Failed to initialize record backend", applog.FieldError, err)
		os.Exit(1)
	}
	defer result.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	// The repository records which alerts already went out today.
	expService := services.NewExpirationService(result.Provider, amqpClient, result.Repo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scanWorker := worker.NewAlertWorker(expService, cfg.ScanInterval, cfg.WindowDays)
	consumer := worker.NewAlertConsumer(amqpClient)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return scanWorker.Run(gctx) })
	g.Go(func() error { return consumer.Run(gctx) })

	logger.Info("Worker running",
		"scan_interval", cfg.ScanInterval.String(),
		applog.FieldWindowDays, cfg.WindowDays,
		"queue", cfg.AMQPQueue)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
