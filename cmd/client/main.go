package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-waitroom/internal/client"
	"github.com/MKhiriev/go-waitroom/internal/config"
	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the TUI
	log := logger.NewClientLogger("waitroom-client", cfg.App.LogFile)
	log.Info().Str("build", buildInfo.String()).Msg("starting client")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
