// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/config"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/utils"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *ProviderError  `json:"error"`
}

type addChainParams struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    nativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls,omitempty"`
}

type nativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

type callParams struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

type jsonRPCProvider struct {
	client   *utils.HTTPClient
	endpoint string
	timeout  time.Duration

	eventsURL   string
	eventBuffer int

	nextID atomic.Uint64

	logger *logger.Logger
}

// NewWalletProvider constructs the JSON-RPC implementation of
// [WalletProvider] for walletCfg.ProviderURL. It returns a nil provider and
// no error when no provider URL is configured; callers treat that as "no
// wallet installed".
//
// Requests that wait on the user (account authorization, network switch and
// registration) are bounded only by the caller's context. All other requests
// are additionally bounded by walletCfg.RequestTimeout.
func NewWalletProvider(walletCfg config.ClientWallet, logger *logger.Logger) (WalletProvider, error) {
	if strings.TrimSpace(walletCfg.ProviderURL) == "" {
		return nil, nil
	}

	endpoint, err := normalizeURL(walletCfg.ProviderURL, "http")
	if err != nil {
		return nil, fmt.Errorf("invalid wallet provider url: %w", err)
	}

	var eventsURL string
	if strings.TrimSpace(walletCfg.EventsURL) != "" {
		eventsURL, err = normalizeURL(walletCfg.EventsURL, "ws")
		if err != nil {
			return nil, fmt.Errorf("invalid wallet events url: %w", err)
		}
	}

	return &jsonRPCProvider{
		client:      utils.NewHTTPClient(endpoint, 0),
		endpoint:    endpoint,
		timeout:     walletCfg.RequestTimeout,
		eventsURL:   eventsURL,
		eventBuffer: walletCfg.EventBuffer,
		logger:      logger,
	}, nil
}

func normalizeURL(raw, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call sends one JSON-RPC request and decodes its result into result (which
// may be nil). interactive requests are not bounded by the request timeout.
func (p *jsonRPCProvider) call(ctx context.Context, interactive bool, result any, method string, params ...any) error {
	if !interactive && p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if params == nil {
		params = []any{}
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      p.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(p.endpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", method, ctxErr)
		}
		return fmt.Errorf("%s: %w: %w", method, ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidResponse, err)
	}
	if rpcResp.Error != nil {
		p.logger.Debug().
			Str("func", "jsonRPCProvider.call").
			Str("method", method).
			Int("code", rpcResp.Error.Code).
			Msg(rpcResp.Error.Message)
		return fmt.Errorf("%s: %w", method, rpcResp.Error)
	}

	if result == nil {
		return nil
	}
	if err = json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidResponse, err)
	}

	return nil
}

// Accounts implements [WalletProvider].
func (p *jsonRPCProvider) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, false, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// RequestAccounts implements [WalletProvider].
func (p *jsonRPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.call(ctx, true, &accounts, "eth_requestAccounts"); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ChainID implements [WalletProvider].
func (p *jsonRPCProvider) ChainID(ctx context.Context) (uint64, error) {
	var raw string
	if err := p.call(ctx, false, &raw, "eth_chainId"); err != nil {
		return 0, err
	}

	chainID, err := hexutil.DecodeUint64(raw)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId: %w: %w", ErrInvalidResponse, err)
	}
	return chainID, nil
}

// SwitchChain implements [WalletProvider].
func (p *jsonRPCProvider) SwitchChain(ctx context.Context, chainID uint64) error {
	param := map[string]string{"chainId": hexutil.EncodeUint64(chainID)}
	return p.call(ctx, true, nil, "wallet_switchEthereumChain", param)
}

// AddChain implements [WalletProvider].
func (p *jsonRPCProvider) AddChain(ctx context.Context, network models.Network) error {
	param := addChainParams{
		ChainID:   hexutil.EncodeUint64(network.ChainID),
		ChainName: network.Name,
		NativeCurrency: nativeCurrency{
			Name:     network.NativeCurrency.Name,
			Symbol:   network.NativeCurrency.Symbol,
			Decimals: network.NativeCurrency.Decimals,
		},
		RPCURLs: []string{network.RPCURL},
	}
	if network.ExplorerURL != "" {
		param.BlockExplorerURLs = []string{network.ExplorerURL}
	}

	return p.call(ctx, true, nil, "wallet_addEthereumChain", param)
}

// Balance implements [WalletProvider].
func (p *jsonRPCProvider) Balance(ctx context.Context, address string) (*big.Int, error) {
	var raw string
	if err := p.call(ctx, false, &raw, "eth_getBalance", address, "latest"); err != nil {
		return nil, err
	}

	balance, err := hexutil.DecodeBig(raw)
	if err != nil {
		return nil, fmt.Errorf("eth_getBalance: %w: %w", ErrInvalidResponse, err)
	}
	return balance, nil
}

// Call implements [WalletProvider].
func (p *jsonRPCProvider) Call(ctx context.Context, to string, data []byte) ([]byte, error) {
	var raw string
	param := callParams{To: to, Data: hexutil.Encode(data)}
	if err := p.call(ctx, false, &raw, "eth_call", param, "latest"); err != nil {
		return nil, err
	}

	out, err := hexutil.Decode(raw)
	if err != nil {
		if errors.Is(err, hexutil.ErrEmptyString) {
			return nil, fmt.Errorf("eth_call: %w: empty result", ErrInvalidResponse)
		}
		return nil, fmt.Errorf("eth_call: %w: %w", ErrInvalidResponse, err)
	}
	return out, nil
}

// Subscribe implements [WalletProvider].
func (p *jsonRPCProvider) Subscribe(ctx context.Context) (<-chan models.ProviderEvent, error) {
	if p.eventsURL == "" {
		return nil, nil
	}

	stream, err := dialEventStream(ctx, p.eventsURL, p.eventBuffer, p.logger)
	if err != nil {
		return nil, err
	}

	return stream.Events(), nil
}

// Close implements [WalletProvider].
func (p *jsonRPCProvider) Close() error {
	p.client.GetClient().CloseIdleConnections()
	return nil
}
