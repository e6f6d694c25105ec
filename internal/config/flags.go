package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client configuration flags from args.
//
// Flags:
//
//	-provider wallet provider JSON-RPC URL
//	-events wallet provider WebSocket notification URL
//	-request-timeout provider request timeout (e.g., "30s", "1m")
//	-chain-id required chain id
//	-rpc-url public RPC URL registered in the wallet
//	-explorer block explorer base URL
//	-d local catalog database path
//	-c/-config json file path with configs
//	-log-file client log file path
//	-tx-delay simulated transaction delay (e.g., "2s")
//	-refresh-interval periodic balance refresh interval (0 disables it)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var providerURL, eventsURL string
	var requestTimeout time.Duration
	var chainID uint64
	var rpcURL, explorerURL string
	var databaseDSN string
	var jsonConfigPath string
	var logFile string
	var txDelay time.Duration
	var refreshInterval time.Duration

	fs := flag.NewFlagSet("prdx-client", flag.ContinueOnError)
	fs.StringVar(&providerURL, "provider", "", "Wallet provider JSON-RPC URL")
	fs.StringVar(&eventsURL, "events", "", "Wallet provider WebSocket notifications URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Provider request timeout (e.g., 30s, 1m)")
	fs.Uint64Var(&chainID, "chain-id", 0, "Required chain id")
	fs.StringVar(&rpcURL, "rpc-url", "", "Public RPC URL of the required network")
	fs.StringVar(&explorerURL, "explorer", "", "Block explorer base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local catalog database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&txDelay, "tx-delay", 0, "Simulated transaction delay (e.g., 2s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Periodic balance refresh interval, 0 disables it")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:          logFile,
			SimulatedTxDelay: txDelay,
		},
		Wallet: Wallet{
			ProviderURL:    providerURL,
			EventsURL:      eventsURL,
			RequestTimeout: requestTimeout,
		},
		Network: Network{
			ChainID:     chainID,
			RPCURL:      rpcURL,
			ExplorerURL: explorerURL,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Workers: Workers{
			BalanceRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
