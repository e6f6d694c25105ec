// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/adapter"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/store"
	"github.com/MKhiriev/go-property-dex/internal/utils"
	"github.com/MKhiriev/go-property-dex/internal/validators"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type tokenService struct {
	wallet    WalletService
	tokens    store.TokenRepository
	validator validators.Validator
	contracts models.Contracts
	delay     time.Duration
	ids       *utils.UUIDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewTokenService creates a TokenService. delay is how long a simulated
// createToken transaction takes to confirm.
func NewTokenService(
	wallet WalletService,
	tokens store.TokenRepository,
	contracts models.Contracts,
	delay time.Duration,
	logger *logger.Logger,
) TokenService {
	return &tokenService{
		wallet:    wallet,
		tokens:    tokens,
		validator: validators.NewTokenValidator(),
		contracts: contracts,
		delay:     delay,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// CreateToken implements TokenService.
//
// The transaction is not broadcast. Its hash is derived from the creator,
// the encoded call and a unique nonce, and the token address from the token
// creator and that hash.
func (s *tokenService) CreateToken(ctx context.Context, data models.TokenData) (models.CreatedToken, error) {
	session := s.wallet.Session()
	if !session.Connected {
		return models.CreatedToken{}, ErrNotConnected
	}

	if err := s.validator.Validate(ctx, data); err != nil {
		return models.CreatedToken{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	totalSupply, err := utils.ParseUnits(data.TotalSupply, data.Decimals)
	if err != nil {
		return models.CreatedToken{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	calldata, err := adapter.EncodeCreateToken(data, totalSupply)
	if err != nil {
		return models.CreatedToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	s.logger.Info().Str("func", "tokenService.CreateToken").
		Str("to", s.contracts.TokenCreator).
		Str("name", data.Name).
		Str("symbol", data.Symbol).
		Str("total_supply", totalSupply.String()).
		Uint8("decimals", data.Decimals).
		Str("data", hexutil.Encode(calldata)).
		Msg("creating token")

	if err := wait(ctx, s.delay); err != nil {
		return models.CreatedToken{}, err
	}

	txHash := utils.Keccak256Hex([]byte(session.Address), calldata, s.ids.Nonce())
	token := models.CreatedToken{
		Address:     utils.DeriveAddress([]byte(s.contracts.TokenCreator), []byte(txHash)),
		TxHash:      txHash,
		Name:        data.Name,
		Symbol:      data.Symbol,
		TotalSupply: data.TotalSupply,
		Decimals:    data.Decimals,
		Creator:     session.Address,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.tokens.Save(ctx, token); err != nil {
		return models.CreatedToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ListCreated implements TokenService.
func (s *tokenService) ListCreated(ctx context.Context) ([]models.CreatedToken, error) {
	session := s.wallet.Session()
	if !session.Connected {
		return nil, ErrNotConnected
	}
	return s.tokens.ListByCreator(ctx, session.Address)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
