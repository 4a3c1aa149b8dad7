package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"vendite/internal/amqp"
	"vendite/internal/backend"
	"vendite/internal/cli"
	apphttp "vendite/internal/http"
	"vendite/internal/ledger"
	"vendite/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := backend.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize source backend", "error", err, "backend", cfg.SourceBackend)
		os.Exit(1)
	}

	// Load once; a load failure halts startup rather than serving an
	// empty ledger.
	led, err := ledger.Load(ctx, src)
	if err != nil {
		logger.Error("Failed to load ledger", "error", err, "backend", cfg.SourceBackend)
		os.Exit(1)
	}

	// Query-event publishing is optional; a missing broker downgrades to
	// running without events.
	var events services.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			logger.Info("Initialized AMQP client",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
			events = client
		}
	}

	queries := services.NewQueryService(led, events, cfg.CacheSize, cfg.CacheTTL)
	defer func() {
		if err := queries.Close(); err != nil {
			logger.Error("Failed closing query service", "error", err)
		}
	}()

	srv := apphttp.NewServer(":"+cfg.Port, queries)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting vendite server",
			"port", cfg.Port,
			"backend", cfg.SourceBackend,
			"records", led.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
