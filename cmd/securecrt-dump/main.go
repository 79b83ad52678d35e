package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/securecrt-dump/internal/config"
	"github.com/MKhiriev/securecrt-dump/internal/logger"
	"github.com/MKhiriev/securecrt-dump/internal/service"
	"github.com/MKhiriev/securecrt-dump/internal/store"
	"github.com/MKhiriev/securecrt-dump/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("securecrt-dump", config.DefaultLogLevel, false).
			Error().Err(err).Msg("error getting configs")
		return 2
	}

	log := logger.NewLogger("securecrt-dump", cfg.App.LogLevel, cfg.App.JSONLogs)
	log.Debug().
		Str("sessions_root", cfg.Source.SessionsRoot()).
		Str("suffix", cfg.Source.Suffix).
		Int("workers", cfg.Workers.Concurrency).
		Bool("passphrase_set", cfg.App.Passphrase != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		return 1
	}
	defer storages.Close()

	sessions := service.NewSessionService(storages, *cfg, os.Stdout, log)
	if cfg.App.List {
		if err = sessions.ListStored(ctx); err != nil {
			log.Error().Err(err).Msg("listing stored credentials failed")
			return 1
		}
		return 0
	}

	if err = sessions.Run(ctx, cfg.Source.SessionsRoot()); err != nil {
		if !errors.Is(err, service.ErrConfigRootNotFound) {
			log.Error().Err(err).Msg("run failed")
		}
		return 1
	}

	return 0
}
