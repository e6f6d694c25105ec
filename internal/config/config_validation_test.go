// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return defaultConfig().ClientConfig()
}

func TestClientConfigValidate_Defaults(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *ClientConfig)
		want   error
	}{
		{
			name:   "empty dsn",
			mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "zero request timeout",
			mutate: func(cfg *ClientConfig) { cfg.Wallet.RequestTimeout = 0 },
			want:   ErrInvalidWalletConfigs,
		},
		{
			name:   "provider url without scheme",
			mutate: func(cfg *ClientConfig) { cfg.Wallet.ProviderURL = "localhost:8545" },
			want:   ErrInvalidWalletConfigs,
		},
		{
			name:   "events url with http scheme",
			mutate: func(cfg *ClientConfig) { cfg.Wallet.EventsURL = "http://localhost:8546" },
			want:   ErrInvalidWalletConfigs,
		},
		{
			name:   "zero chain id",
			mutate: func(cfg *ClientConfig) { cfg.Network.ChainID = 0 },
			want:   ErrInvalidNetworkConfigs,
		},
		{
			name:   "bad token address",
			mutate: func(cfg *ClientConfig) { cfg.Contracts.StableToken = "0x1234...5678" },
			want:   ErrInvalidContractsConfigs,
		},
		{
			name:   "negative refresh interval",
			mutate: func(cfg *ClientConfig) { cfg.Workers.BalanceRefreshInterval = -1 },
			want:   ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestClientConfigValidate_ProviderOptional(t *testing.T) {
	cfg := validClientConfig()
	cfg.Wallet.ProviderURL = ""
	cfg.Wallet.EventsURL = ""

	assert.NoError(t, cfg.validate())
}

func TestStructuredConfig_ClientConfigMapsNetwork(t *testing.T) {
	cfg := defaultConfig().ClientConfig()

	assert.Equal(t, DefaultChainID, cfg.Network.ChainID)
	assert.Equal(t, DefaultCurrencySymbol, cfg.Network.NativeCurrency.Symbol)
	assert.Equal(t, DefaultCurrencyDecimals, cfg.Network.NativeCurrency.Decimals)
	assert.Equal(t, DefaultExplorerURL, cfg.Network.ExplorerURL)
}
