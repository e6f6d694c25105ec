package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogFile          string   `json:"log_file"`
		SimulatedTxDelay Duration `json:"simulated_tx_delay"`
	} `json:"app,omitempty"`

	Wallet struct {
		ProviderURL    string   `json:"provider_url"`
		EventsURL      string   `json:"events_url"`
		RequestTimeout Duration `json:"request_timeout"`
		EventBuffer    int      `json:"event_buffer"`
	} `json:"wallet,omitempty"`

	Network struct {
		ChainID          uint64 `json:"chain_id"`
		Name             string `json:"name"`
		RPCURL           string `json:"rpc_url"`
		ExplorerURL      string `json:"explorer_url"`
		CurrencyName     string `json:"currency_name"`
		CurrencySymbol   string `json:"currency_symbol"`
		CurrencyDecimals uint8  `json:"currency_decimals"`
	} `json:"network,omitempty"`

	Contracts struct {
		GovernanceToken string `json:"governance_token"`
		StableToken     string `json:"stable_token"`
		TokenCreator    string `json:"token_creator"`
		FeeRecipient    string `json:"fee_recipient"`
		Marketplace     string `json:"marketplace"`
	} `json:"contracts,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		BalanceRefreshInterval Duration `json:"balance_refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile:          jsonCfg.App.LogFile,
			SimulatedTxDelay: time.Duration(jsonCfg.App.SimulatedTxDelay),
		},
		Wallet: Wallet{
			ProviderURL:    jsonCfg.Wallet.ProviderURL,
			EventsURL:      jsonCfg.Wallet.EventsURL,
			RequestTimeout: time.Duration(jsonCfg.Wallet.RequestTimeout),
			EventBuffer:    jsonCfg.Wallet.EventBuffer,
		},
		Network: Network{
			ChainID:          jsonCfg.Network.ChainID,
			Name:             jsonCfg.Network.Name,
			RPCURL:           jsonCfg.Network.RPCURL,
			ExplorerURL:      jsonCfg.Network.ExplorerURL,
			CurrencyName:     jsonCfg.Network.CurrencyName,
			CurrencySymbol:   jsonCfg.Network.CurrencySymbol,
			CurrencyDecimals: jsonCfg.Network.CurrencyDecimals,
		},
		Contracts: Contracts{
			GovernanceToken: jsonCfg.Contracts.GovernanceToken,
			StableToken:     jsonCfg.Contracts.StableToken,
			TokenCreator:    jsonCfg.Contracts.TokenCreator,
			FeeRecipient:    jsonCfg.Contracts.FeeRecipient,
			Marketplace:     jsonCfg.Contracts.Marketplace,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			BalanceRefreshInterval: time.Duration(jsonCfg.Workers.BalanceRefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
