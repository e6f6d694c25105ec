// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/adapter"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/internal/store"
	"github.com/MKhiriev/go-property-dex/internal/utils"
	"github.com/MKhiriev/go-property-dex/internal/validators"
	"github.com/MKhiriev/go-property-dex/models"
)

const day = 24 * time.Hour

type listingService struct {
	wallet    WalletService
	listings  store.ListingRepository
	tokens    adapter.TokenReader
	validator validators.Validator
	delay     time.Duration
	ids       *utils.UUIDGenerator
	now       func() time.Time
	logger    *logger.Logger
}

// NewListingService creates a ListingService. tokens resolves the symbol of
// a listed token when the seller leaves it empty. delay is how long a
// simulated marketplace call takes to confirm.
func NewListingService(
	wallet WalletService,
	listings store.ListingRepository,
	tokens adapter.TokenReader,
	delay time.Duration,
	logger *logger.Logger,
) ListingService {
	return &listingService{
		wallet:    wallet,
		listings:  listings,
		tokens:    tokens,
		validator: validators.NewListingValidator(),
		delay:     delay,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Create implements ListingService.
func (s *listingService) Create(ctx context.Context, draft models.ListingDraft) (models.TokenListing, error) {
	session := s.wallet.Session()
	if !session.Connected {
		return models.TokenListing{}, ErrNotConnected
	}

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.TokenListing{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	symbol := strings.TrimSpace(draft.TokenSymbol)
	if symbol == "" {
		symbol = s.resolveSymbol(ctx, draft.TokenAddress)
	}
	name := strings.TrimSpace(draft.TokenName)
	if name == "" {
		name = symbol
	}

	s.logger.Info().Str("func", "listingService.Create").
		Str("token", draft.TokenAddress).
		Str("amount", draft.Amount).
		Str("price", draft.PricePerToken).
		Str("payment", string(draft.PaymentToken)).
		Int("days", draft.DurationDays).
		Msg("listing token")

	if err := wait(ctx, s.delay); err != nil {
		return models.TokenListing{}, err
	}

	now := s.now().UTC()
	listing := models.TokenListing{
		ID:             s.ids.Generate(),
		Seller:         session.Address,
		TokenAddress:   draft.TokenAddress,
		TokenName:      name,
		TokenSymbol:    symbol,
		Amount:         draft.Amount,
		PricePerToken:  draft.PricePerToken,
		PaymentToken:   draft.PaymentToken,
		ReferralActive: draft.ReferralActive,
		EndTime:        now.Add(time.Duration(draft.DurationDays) * day),
		Active:         true,
		Metadata:       draft.Metadata,
		CreatedAt:      now,
	}
	if draft.ReferralActive {
		listing.ReferralPercent = draft.ReferralPercent
	}

	if err := s.listings.Save(ctx, listing); err != nil {
		return models.TokenListing{}, fmt.Errorf("%w: %w", ErrListingFailed, err)
	}

	return listing, nil
}

// Browse implements ListingService.
func (s *listingService) Browse(ctx context.Context, filter models.ListingFilter) ([]models.TokenListing, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.listings.Browse(ctx, filter, s.now().UTC())
}

// SeedDemoListings implements ListingService.
func (s *listingService) SeedDemoListings(ctx context.Context) error {
	now := s.now().UTC()
	for _, l := range demoListings(now) {
		if err := s.listings.Renew(ctx, l, now); err != nil {
			return fmt.Errorf("seed listing %s: %w", l.ID, err)
		}
	}

	s.logger.Debug().Str("func", "listingService.SeedDemoListings").Msg("demo listings installed")
	return nil
}

func (s *listingService) resolveSymbol(ctx context.Context, token string) string {
	if s.tokens != nil {
		symbol, err := s.tokens.Symbol(ctx, token)
		if err == nil && symbol != "" {
			return symbol
		}
		s.logger.Warn().Str("func", "listingService.resolveSymbol").Err(err).Str("token", token).Msg("failed to read token symbol")
	}
	return utils.ShortAddress(token)
}

func demoListings(now time.Time) []models.TokenListing {
	return []models.TokenListing{
		{
			ID:              "demo-1",
			Seller:          "0xabcd000000000000000000000000000000001234",
			TokenAddress:    "0x1234000000000000000000000000000000005678",
			TokenName:       "Beach Villa Token",
			TokenSymbol:     "BVT",
			Amount:          "100000",
			PricePerToken:   "0.01",
			PaymentToken:    models.PaymentPRDX,
			ReferralActive:  true,
			ReferralPercent: 5,
			EndTime:         now.Add(7 * day),
			Active:          true,
			CreatedAt:       now,
			Metadata: models.TokenMetadata{
				ProjectDescription: "Luxury beach villa in Miami with ocean view",
				ProjectWebsite:     "https://beachvilla.example.com",
				TokenImageURL:      "https://images.unsplash.com/photo-1580587771525-78b9dba3b914",
				TelegramURL:        "https://t.me/beachvilla",
				SocialMediaLink:    "https://twitter.com/beachvilla",
			},
		},
		{
			ID:             "demo-2",
			Seller:         "0xbcde000000000000000000000000000000002345",
			TokenAddress:   "0x2345000000000000000000000000000000006789",
			TokenName:      "Downtown Apartment",
			TokenSymbol:    "DAT",
			Amount:         "50000",
			PricePerToken:  "0.05",
			PaymentToken:   models.PaymentUSDC,
			ReferralActive: false,
			EndTime:        now.Add(14 * day),
			Active:         true,
			CreatedAt:      now,
			Metadata: models.TokenMetadata{
				ProjectDescription: "Modern apartment in the heart of New York City",
				ProjectWebsite:     "https://downtownapt.example.com",
				TokenImageURL:      "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2",
				TelegramURL:        "https://t.me/downtownapt",
				SocialMediaLink:    "https://twitter.com/downtownapt",
			},
		},
		{
			ID:              "demo-3",
			Seller:          "0xcdef000000000000000000000000000000003456",
			TokenAddress:    "0x3456000000000000000000000000000000007890",
			TokenName:       "Commercial Office Space",
			TokenSymbol:     "COS",
			Amount:          "200000",
			PricePerToken:   "0.02",
			PaymentToken:    models.PaymentPRDX,
			ReferralActive:  true,
			ReferralPercent: 3,
			EndTime:         now.Add(30 * day),
			Active:          true,
			CreatedAt:       now,
			Metadata: models.TokenMetadata{
				ProjectDescription: "Premium office space in the financial district",
				ProjectWebsite:     "https://officespace.example.com",
				TokenImageURL:      "https://images.unsplash.com/photo-1497366754035-f200968a6e72",
				TelegramURL:        "https://t.me/officespace",
				SocialMediaLink:    "https://twitter.com/officespace",
			},
		},
	}
}
