// Command gridpathd serves grid searches over HTTP.
//
// Routes:
//
//	POST /api/search         run a search, answer with the result
//	POST /api/search/stream  run a search, stream every step as server-sent events
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus exposition
//
// Settings come from GRIDPATH_* environment variables and an optional .env
// file in the working directory. SIGINT or SIGTERM starts a graceful
// shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/logging"
	"github.com/katalvlaran/gridpath/server"
)

const shutdownGrace = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gridpathd:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(cfg.Logging())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting gridpathd",
		zap.String("addr", cfg.ListenAddr),
		zap.Int("max_grid_size", cfg.MaxGridSize),
		zap.Int("rate_limit_rps", cfg.RateLimitRPS),
	)

	srv := server.New(cfg, logger)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, shutdownGrace)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutdown requested")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
