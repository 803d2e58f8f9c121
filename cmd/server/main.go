package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-waitroom/internal/config"
	"github.com/MKhiriev/go-waitroom/internal/handler"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/metrics"
	"github.com/MKhiriev/go-waitroom/internal/server"
	"github.com/MKhiriev/go-waitroom/internal/service"
	"github.com/MKhiriev/go-waitroom/internal/store"
	"github.com/MKhiriev/go-waitroom/internal/workers"
	"github.com/MKhiriev/go-waitroom/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("waitroom-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	m := metrics.New()

	services, err := service.NewServices(store.NewStorages(db, log), cfg.Workers, buildInfo, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
