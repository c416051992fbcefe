package main

import (
	"cmp"
	"context"
	"fmt"

	"github.com/MKhiriev/go-theatre-ai/internal/config"
	"github.com/MKhiriev/go-theatre-ai/internal/handler"
	"github.com/MKhiriev/go-theatre-ai/internal/logger"
	"github.com/MKhiriev/go-theatre-ai/internal/server"
	"github.com/MKhiriev/go-theatre-ai/internal/service"
	"github.com/MKhiriev/go-theatre-ai/internal/store"
	"github.com/MKhiriev/go-theatre-ai/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.Summary())

	log := logger.NewLogger("theatre-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = cmp.Or(buildInfo.BuildVersion(), "N/A")
	}

	log.Debug().
		Str("storage_driver", cfg.Storage.DB.Driver).
		Str("session_transport", cfg.App.SessionTransport).
		Str("http_address", cfg.Server.HTTPAddress).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(ctx, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
