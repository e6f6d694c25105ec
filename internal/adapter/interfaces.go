// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the client to the outside world: the wallet
// provider (JSON-RPC requests over HTTP, notifications over a WebSocket) and
// the ERC-20 token contracts read through that provider.
//
// Provider failures are reported with the sentinel errors in errors.go so
// callers can use [errors.Is]: [ErrUserRejected] for code 4001,
// [ErrChainNotAdded] for code 4902, [ErrProviderUnavailable] when the
// provider cannot be reached.
package adapter

import (
	"context"
	"math/big"

	"github.com/MKhiriev/go-property-dex/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_provider_mock.go -package=mock

// WalletProvider is the EIP-1193 style wallet boundary.
type WalletProvider interface {
	// Accounts returns the accounts the wallet already exposes to the client
	// (eth_accounts). It never prompts the user and may return an empty list.
	Accounts(ctx context.Context) ([]string, error)

	// RequestAccounts asks the user to authorize account access
	// (eth_requestAccounts). It may block until the user answers and
	// returns [ErrUserRejected] if they decline.
	RequestAccounts(ctx context.Context) ([]string, error)

	// ChainID returns the chain the wallet is currently on (eth_chainId).
	ChainID(ctx context.Context) (uint64, error)

	// SwitchChain asks the wallet to switch to chainID
	// (wallet_switchEthereumChain). Returns [ErrChainNotAdded] if the wallet
	// does not know the chain.
	SwitchChain(ctx context.Context, chainID uint64) error

	// AddChain registers network with the wallet (wallet_addEthereumChain).
	AddChain(ctx context.Context, network models.Network) error

	// Balance returns the native balance of address in wei at the latest
	// block (eth_getBalance).
	Balance(ctx context.Context, address string) (*big.Int, error)

	// Call executes a read-only contract call against the latest block
	// (eth_call) and returns the raw return data.
	Call(ctx context.Context, to string, data []byte) ([]byte, error)

	// Subscribe starts delivering provider notifications. The returned channel
	// is closed when ctx is done or the notification stream ends. A provider
	// without a notification endpoint returns a nil channel.
	Subscribe(ctx context.Context) (<-chan models.ProviderEvent, error)

	// Close releases the provider's connections.
	Close() error
}

// TokenReader reads ERC-20 token state.
type TokenReader interface {
	// Decimals returns the token's decimals().
	Decimals(ctx context.Context, token string) (uint8, error)

	// Symbol returns the token's symbol().
	Symbol(ctx context.Context, token string) (string, error)

	// BalanceOf returns balanceOf(owner) in the token's smallest unit.
	BalanceOf(ctx context.Context, token, owner string) (*big.Int, error)
}
