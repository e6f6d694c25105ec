// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/go-property-dex/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABIJSON = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}
]`

const tokenCreatorABIJSON = `[
	{"type":"function","name":"createToken","stateMutability":"nonpayable","inputs":[
		{"name":"name","type":"string"},
		{"name":"symbol","type":"string"},
		{"name":"totalSupply","type":"uint256"},
		{"name":"decimals","type":"uint8"}
	],"outputs":[{"name":"","type":"address"}]}
]`

var (
	erc20ABI        = mustParseABI(erc20ABIJSON)
	tokenCreatorABI = mustParseABI(tokenCreatorABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse abi: %v", err))
	}
	return parsed
}

type erc20Reader struct {
	provider WalletProvider
}

// NewTokenReader returns a [TokenReader] that reads ERC-20 state through
// provider's eth_call.
func NewTokenReader(provider WalletProvider) TokenReader {
	return &erc20Reader{provider: provider}
}

// Decimals implements [TokenReader].
func (r *erc20Reader) Decimals(ctx context.Context, token string) (uint8, error) {
	var decimals uint8
	if err := r.read(ctx, token, &decimals, "decimals"); err != nil {
		return 0, err
	}
	return decimals, nil
}

// Symbol implements [TokenReader].
func (r *erc20Reader) Symbol(ctx context.Context, token string) (string, error) {
	var symbol string
	if err := r.read(ctx, token, &symbol, "symbol"); err != nil {
		return "", err
	}
	return symbol, nil
}

// BalanceOf implements [TokenReader].
func (r *erc20Reader) BalanceOf(ctx context.Context, token, owner string) (*big.Int, error) {
	if !common.IsHexAddress(owner) {
		return nil, fmt.Errorf("balanceOf: invalid owner address %q", owner)
	}

	balance := new(big.Int)
	if err := r.read(ctx, token, &balance, "balanceOf", common.HexToAddress(owner)); err != nil {
		return nil, err
	}
	return balance, nil
}

func (r *erc20Reader) read(ctx context.Context, token string, out any, method string, args ...any) error {
	if r.provider == nil {
		return fmt.Errorf("%s: %w", method, ErrProviderUnavailable)
	}
	if !common.IsHexAddress(token) {
		return fmt.Errorf("%s: invalid token address %q", method, token)
	}

	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("%s: pack: %w", method, err)
	}

	raw, err := r.provider.Call(ctx, token, data)
	if err != nil {
		return err
	}

	values, err := erc20ABI.Unpack(method, raw)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrInvalidResponse, err)
	}
	if len(values) != 1 {
		return fmt.Errorf("%s: %w: %d return values", method, ErrInvalidResponse, len(values))
	}

	return copyABIValue(out, values[0])
}

func copyABIValue(out, value any) error {
	switch dst := out.(type) {
	case *uint8:
		v, ok := value.(uint8)
		if !ok {
			return fmt.Errorf("%w: want uint8, got %T", ErrInvalidResponse, value)
		}
		*dst = v
	case *string:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: want string, got %T", ErrInvalidResponse, value)
		}
		*dst = v
	case **big.Int:
		v, ok := value.(*big.Int)
		if !ok {
			return fmt.Errorf("%w: want *big.Int, got %T", ErrInvalidResponse, value)
		}
		*dst = v
	default:
		return fmt.Errorf("unsupported abi output %T", out)
	}
	return nil
}

// EncodeCreateToken ABI-encodes the token creator's
// createToken(name, symbol, totalSupply, decimals) call. totalSupply is in
// the token's smallest unit.
func EncodeCreateToken(token models.TokenData, totalSupply *big.Int) ([]byte, error) {
	data, err := tokenCreatorABI.Pack("createToken", token.Name, token.Symbol, totalSupply, token.Decimals)
	if err != nil {
		return nil, fmt.Errorf("createToken: pack: %w", err)
	}
	return data, nil
}
