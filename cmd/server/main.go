package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oficina/internal/app/server/api"
	"oficina/internal/config"
	"oficina/internal/infrastructure/migration"
	"oficina/internal/infrastructure/storage"
	"oficina/internal/infrastructure/storage/memory"
	"oficina/internal/infrastructure/storage/postgres"
	"oficina/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	conf := config.NewConfig()
	log := logger.NewWriter(conf.Env, os.Stderr, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Storage
	if conf.DB.DatabaseURI != "" {
		pg, err := postgres.New(ctx, conf, log, migration.DefaultEngine)
		if err != nil {
			log.Error("failed to init storage", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		store = pg
		log.Info("using postgres storage")
	} else {
		store = memory.New(log)
		log.Info("using in-memory storage")
	}

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(store, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
