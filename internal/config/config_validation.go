// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// validate checks the merged [StructuredConfig] before it is mapped to a
// client view. Field-level checks live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Wallet.RequestTimeout <= 0 || cfg.Wallet.EventBuffer <= 0 {
		return ErrInvalidWalletConfigs
	}
	if !isValidURL(cfg.Wallet.ProviderURL, "http", "https") || !isValidURL(cfg.Wallet.EventsURL, "ws", "wss") {
		return ErrInvalidWalletConfigs
	}

	if cfg.Network.ChainID == 0 || cfg.Network.Name == "" || cfg.Network.RPCURL == "" || cfg.Network.ExplorerURL == "" {
		return ErrInvalidNetworkConfigs
	}

	for _, address := range []string{
		cfg.Contracts.GovernanceToken,
		cfg.Contracts.StableToken,
		cfg.Contracts.TokenCreator,
		cfg.Contracts.FeeRecipient,
		cfg.Contracts.Marketplace,
	} {
		if !common.IsHexAddress(address) {
			return ErrInvalidContractsConfigs
		}
	}

	if cfg.Workers.BalanceRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// isValidURL reports whether raw is empty or an absolute URL with one of the
// given schemes.
func isValidURL(raw string, schemes ...string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}

	for _, scheme := range schemes {
		if u.Scheme == scheme {
			return true
		}
	}
	return false
}
