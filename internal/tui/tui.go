// Package tui implements the terminal interface of the Properties DEX
// client on top of bubbletea.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-property-dex/internal/config"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/MKhiriev/go-property-dex/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user left with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	network   models.Network
	contracts models.Contracts
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		network:   cfg.Network,
		contracts: cfg.Contracts,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// newRoot builds the page router around the current session.
func (t *TUI) newRoot(ctx context.Context) RootModel {
	wallet := t.services.WalletService
	state := newWalletState(wallet.Session(), t.network, t.contracts)

	pages := map[string]tea.Model{
		pageHome:        NewHomeModel(state),
		pageCreateToken: NewCreateTokenModel(ctx, t.services.TokenService, state),
		pageListToken:   NewListTokenModel(ctx, t.services.ListingService, state),
		pageMarketplace: NewMarketplaceModel(ctx, t.services.ListingService, state),
		pageMyTokens:    NewMyTokensModel(ctx, t.services.TokenService, state),
	}

	return NewRootModel(ctx, wallet, state, pages, pageHome, t.buildInfo)
}

// Run blocks until the user quits or ctx is done. A canceled ctx is not an
// error.
func (t *TUI) Run(ctx context.Context) error {
	log := t.logger.GetChildLogger()

	finalModel, err := tea.NewProgram(t.newRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Debug().Str("func", "TUI.Run").Msg("program stopped by context")
			return nil
		}
		log.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		log.Info().Str("func", "TUI.Run").Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
