package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/itchan-dev/threadboard/backend/internal/router"
	"github.com/itchan-dev/threadboard/backend/internal/setup"
	"github.com/itchan-dev/threadboard/shared/config"
	"github.com/itchan-dev/threadboard/shared/logger"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps, err := setup.SetupDependencies(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Log.Error("failed to set up dependencies", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Public.Http.Addr,
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Public.Http.ReadTimeout,
		WriteTimeout: cfg.Public.Http.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Public.Http.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("server stopped", "threads", deps.Storage.ThreadCount(), "replies", deps.Storage.ReplyCount())
}
