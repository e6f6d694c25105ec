// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Base mainnet and the deployed Properties DEX contracts.
const (
	DefaultChainID          uint64 = 8453
	DefaultNetworkName             = "Base"
	DefaultRPCURL                  = "https://mainnet.base.org"
	DefaultExplorerURL             = "https://basescan.org"
	DefaultCurrencyName            = "ETH"
	DefaultCurrencySymbol          = "ETH"
	DefaultCurrencyDecimals uint8  = 18

	DefaultGovernanceToken = "0x61Dd008F1582631Aa68645fF92a1a5ECAedBeD19"
	DefaultStableToken     = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	DefaultTokenCreator    = "0x01A3ad1acc738cb60d48E08ccadC769904De256c"
	DefaultFeeRecipient    = "0x7fDECF16574bd21Fd5cce60B701D01A6F83826ab"
	// DefaultMarketplace stays the zero address until the marketplace
	// contract is deployed.
	DefaultMarketplace = "0x0000000000000000000000000000000000000000"
)

const (
	defaultRequestTimeout   = 30 * time.Second
	defaultEventBuffer      = 16
	defaultSimulatedTxDelay = 2 * time.Second
	defaultDSN              = "prdx.db"
	defaultLogFile          = "logs"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile:          defaultLogFile,
			SimulatedTxDelay: defaultSimulatedTxDelay,
		},
		Wallet: Wallet{
			RequestTimeout: defaultRequestTimeout,
			EventBuffer:    defaultEventBuffer,
		},
		Network: Network{
			ChainID:          DefaultChainID,
			Name:             DefaultNetworkName,
			RPCURL:           DefaultRPCURL,
			ExplorerURL:      DefaultExplorerURL,
			CurrencyName:     DefaultCurrencyName,
			CurrencySymbol:   DefaultCurrencySymbol,
			CurrencyDecimals: DefaultCurrencyDecimals,
		},
		Contracts: Contracts{
			GovernanceToken: DefaultGovernanceToken,
			StableToken:     DefaultStableToken,
			TokenCreator:    DefaultTokenCreator,
			FeeRecipient:    DefaultFeeRecipient,
			Marketplace:     DefaultMarketplace,
		},
		Storage: Storage{DB: DB{DSN: defaultDSN}},
	}
}
