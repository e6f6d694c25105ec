package service

import (
	"github.com/MKhiriev/go-property-dex/internal/adapter"
	"github.com/MKhiriev/go-property-dex/internal/config"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/store"
)

type ClientServices struct {
	WalletService     WalletService
	TokenService      TokenService
	ListingService    ListingService
	BalanceRefreshJob BalanceRefreshJob
}

func NewClientServices(
	provider adapter.WalletProvider,
	tokens adapter.TokenReader,
	storages *store.ClientStorages,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	if tokens == nil {
		tokens = adapter.NewTokenReader(provider)
	}
	walletSvc := NewWalletService(provider, tokens, cfg.Network, cfg.Contracts, logger)

	return &ClientServices{
		WalletService:     walletSvc,
		TokenService:      NewTokenService(walletSvc, storages.TokenRepository, cfg.Contracts, cfg.App.SimulatedTxDelay, logger),
		ListingService:    NewListingService(walletSvc, storages.ListingRepository, tokens, cfg.App.SimulatedTxDelay, logger),
		BalanceRefreshJob: NewBalanceRefreshJob(walletSvc, logger),
	}
}
