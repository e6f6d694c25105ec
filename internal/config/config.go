// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from a .env
// file, environment variables, command-line flags, an optional JSON file and
// the defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Wallet holds the endpoints of the wallet provider.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Network describes the chain the wallet must be connected to.
	Network Network `envPrefix:"NETWORK_"`

	// Contracts lists the fixed contract addresses.
	Contracts Contracts `envPrefix:"CONTRACTS_"`

	// Storage holds the local catalog database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration.
type App struct {
	// LogFile is where the client writes its JSON log lines. The terminal is
	// owned by the TUI, so logs never go to stdout unless the file cannot be
	// opened.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// SimulatedTxDelay is how long simulated token creation and listing
	// transactions take to "confirm" (e.g. "2s").
	// Env: APP_SIMULATED_TX_DELAY
	SimulatedTxDelay time.Duration `env:"SIMULATED_TX_DELAY"`
}

// Wallet holds the wallet provider endpoints.
type Wallet struct {
	// ProviderURL is the HTTP JSON-RPC endpoint of the wallet provider
	// (e.g. "http://127.0.0.1:8545"). When empty no wallet is available and
	// every connect attempt reports the provider as unavailable.
	// Env: WALLET_PROVIDER_URL
	ProviderURL string `env:"PROVIDER_URL"`

	// EventsURL is the WebSocket endpoint on which the provider publishes
	// accountsChanged / chainChanged / disconnect notifications. Optional.
	// Env: WALLET_EVENTS_URL
	EventsURL string `env:"EVENTS_URL"`

	// RequestTimeout bounds a single provider request. Requests that need
	// user approval (account access, network switch) are not bounded by it.
	// Env: WALLET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// EventBuffer is the capacity of the provider notification channel.
	// Env: WALLET_EVENT_BUFFER
	EventBuffer int `env:"EVENT_BUFFER"`
}

// Network describes the required chain.
type Network struct {
	// Env: NETWORK_CHAIN_ID
	ChainID uint64 `env:"CHAIN_ID"`
	// Env: NETWORK_NAME
	Name string `env:"NAME"`
	// Env: NETWORK_RPC_URL
	RPCURL string `env:"RPC_URL"`
	// Env: NETWORK_EXPLORER_URL
	ExplorerURL string `env:"EXPLORER_URL"`
	// Env: NETWORK_CURRENCY_NAME
	CurrencyName string `env:"CURRENCY_NAME"`
	// Env: NETWORK_CURRENCY_SYMBOL
	CurrencySymbol string `env:"CURRENCY_SYMBOL"`
	// Env: NETWORK_CURRENCY_DECIMALS
	CurrencyDecimals uint8 `env:"CURRENCY_DECIMALS"`
}

// Contracts lists the contract addresses compiled into the client. They can
// be overridden for test deployments.
type Contracts struct {
	// Env: CONTRACTS_GOVERNANCE_TOKEN
	GovernanceToken string `env:"GOVERNANCE_TOKEN"`
	// Env: CONTRACTS_STABLE_TOKEN
	StableToken string `env:"STABLE_TOKEN"`
	// Env: CONTRACTS_TOKEN_CREATOR
	TokenCreator string `env:"TOKEN_CREATOR"`
	// Env: CONTRACTS_FEE_RECIPIENT
	FeeRecipient string `env:"FEE_RECIPIENT"`
	// Env: CONTRACTS_MARKETPLACE
	Marketplace string `env:"MARKETPLACE"`
}

// Storage groups the configuration of the local catalog.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite catalog.
type DB struct {
	// DSN is the SQLite database file path (e.g. "prdx.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// BalanceRefreshInterval enables periodic balance refreshes when > 0.
	// Balances are refreshed on demand only by default.
	// Env: WORKERS_BALANCE_REFRESH_INTERVAL
	BalanceRefreshInterval time.Duration `env:"BALANCE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (first non-zero value wins):
//  1. .env file + environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
