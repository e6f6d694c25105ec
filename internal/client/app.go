package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-property-dex/internal/config"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/MKhiriev/go-property-dex/internal/tui"
	"github.com/MKhiriev/go-property-dex/internal/workers"
)

type App struct {
	services  *service.ClientServices
	ui        UI
	workerCfg config.ClientWorkers
	resources []Resource
	logger    *logger.Logger
}

// NewApp assembles the runtime. resources are closed in order once Run
// returns; nil entries are skipped.
func NewApp(services *service.ClientServices, ui UI, workerCfg config.ClientWorkers, logger *logger.Logger, resources ...Resource) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{
		services:  services,
		ui:        ui,
		workerCfg: workerCfg,
		resources: resources,
		logger:    logger,
	}, nil
}

// Run seeds the demo catalog, starts the workers, and runs the UI. When the
// UI returns the workers are stopped and the resources released. Quitting
// with ctrl+c is not an error.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.GetChildLogger()

	if err := a.services.ListingService.SeedDemoListings(ctx); err != nil {
		log.Warn().Err(err).Str("func", "App.Run").Msg("failed to seed demo listings")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ws := workers.NewWorkers(a.logger,
		a.services.WalletService,
		workers.NewBalanceRefreshWorker(a.services.BalanceRefreshJob, a.workerCfg.BalanceRefreshInterval),
	)

	workersDone := make(chan error, 1)
	go func() {
		workersDone <- ws.Run(ctx)
	}()

	uiErr := a.ui.Run(ctx)
	if errors.Is(uiErr, tui.ErrUserQuit) {
		uiErr = nil
	}

	cancel()
	workerErr := <-workersDone
	log.Info().Str("func", "App.Run").Msg("workers stopped")

	var closeErrs []error
	for _, r := range a.resources {
		if r == nil {
			continue
		}
		if err := r.Close(); err != nil {
			closeErrs = append(closeErrs, err)
		}
	}
	if len(closeErrs) > 0 {
		log.Warn().Err(errors.Join(closeErrs...)).Str("func", "App.Run").Msg("failed to release resources")
	}

	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	if workerErr != nil {
		return fmt.Errorf("workers: %w", workerErr)
	}
	return nil
}
