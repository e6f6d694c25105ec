package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-property-dex/internal/adapter"
	"github.com/MKhiriev/go-property-dex/internal/client"
	"github.com/MKhiriev/go-property-dex/internal/config"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/MKhiriev/go-property-dex/internal/store"
	"github.com/MKhiriev/go-property-dex/internal/tui"
	"github.com/MKhiriev/go-property-dex/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("property-dex-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("property-dex-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := adapter.NewWalletProvider(cfg.Wallet, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet provider")
	}
	if provider == nil {
		log.Warn().Msg("no wallet provider configured, wallet features are unavailable")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(provider, nil, storages, cfg, log)
	ui := tui.New(services, cfg, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log, provider, storages)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
