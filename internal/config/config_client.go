package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-property-dex/models"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the client log file path.
	LogFile string
	// SimulatedTxDelay is the confirmation delay of simulated transactions.
	SimulatedTxDelay time.Duration
}

// ClientWallet holds the wallet provider endpoints used by the adapter layer.
type ClientWallet struct {
	// ProviderURL is the JSON-RPC endpoint. Empty means no wallet.
	ProviderURL string
	// EventsURL is the WebSocket notification endpoint. Optional.
	EventsURL string
	// RequestTimeout is the default timeout for provider requests.
	RequestTimeout time.Duration
	// EventBuffer is the capacity of the notification channel.
	EventBuffer int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// BalanceRefreshInterval enables periodic balance refreshes when > 0.
	BalanceRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Wallet    ClientWallet
	Network   models.Network
	Contracts models.Contracts
	Storage   ClientStorage
	Workers   ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	return clientCfg, clientCfg.validate()
}

// ClientConfig maps the structured configuration onto the client view.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:          cfg.App.LogFile,
			SimulatedTxDelay: cfg.App.SimulatedTxDelay,
		},
		Wallet: ClientWallet{
			ProviderURL:    cfg.Wallet.ProviderURL,
			EventsURL:      cfg.Wallet.EventsURL,
			RequestTimeout: cfg.Wallet.RequestTimeout,
			EventBuffer:    cfg.Wallet.EventBuffer,
		},
		Network: models.Network{
			ChainID: cfg.Network.ChainID,
			Name:    cfg.Network.Name,
			NativeCurrency: models.NativeCurrency{
				Name:     cfg.Network.CurrencyName,
				Symbol:   cfg.Network.CurrencySymbol,
				Decimals: cfg.Network.CurrencyDecimals,
			},
			RPCURL:      cfg.Network.RPCURL,
			ExplorerURL: cfg.Network.ExplorerURL,
		},
		Contracts: models.Contracts{
			GovernanceToken: cfg.Contracts.GovernanceToken,
			StableToken:     cfg.Contracts.StableToken,
			TokenCreator:    cfg.Contracts.TokenCreator,
			FeeRecipient:    cfg.Contracts.FeeRecipient,
			Marketplace:     cfg.Contracts.Marketplace,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			BalanceRefreshInterval: cfg.Workers.BalanceRefreshInterval,
		},
	}
}
