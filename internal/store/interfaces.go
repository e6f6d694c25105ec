// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the local catalog of the client: marketplace listings
// and the tokens created from this machine. The catalog is a SQLite database
// whose schema is applied by the migrations package.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-property-dex/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ListingRepository persists marketplace listings.
type ListingRepository interface {
	// Save stores a new listing. Returns [ErrListingAlreadyExists] if the id
	// is taken.
	Save(ctx context.Context, listing models.TokenListing) error

	// Browse returns the active listings whose end time is after now that
	// match filter, in the filter's sort order.
	Browse(ctx context.Context, filter models.ListingFilter, now time.Time) ([]models.TokenListing, error)

	// Renew stores listing unless a live listing with the same id exists. An
	// expired or inactive one is replaced, so it shows up in Browse again.
	Renew(ctx context.Context, listing models.TokenListing, now time.Time) error
}

// TokenRepository records tokens created through the token creator.
type TokenRepository interface {
	// Save records a created token. Returns [ErrTokenAlreadyExists] if the
	// address is already recorded.
	Save(ctx context.Context, token models.CreatedToken) error

	// ListByCreator returns the tokens created by creator, newest first.
	ListByCreator(ctx context.Context, creator string) ([]models.CreatedToken, error)
}
