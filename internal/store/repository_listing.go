// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/shopspring/decimal"
)

// listingRepository is the SQLite-backed implementation of
// [ListingRepository].
type listingRepository struct {
	*DB
	logger *logger.Logger
}

// NewListingRepository constructs a [ListingRepository] on db.
func NewListingRepository(db *DB, logger *logger.Logger) ListingRepository {
	return &listingRepository{
		DB:     db,
		logger: logger,
	}
}

// Save implements [ListingRepository].
func (r *listingRepository) Save(ctx context.Context, listing models.TokenListing) error {
	query, args, err := buildSaveListingQuery(listing)
	if err != nil {
		r.logger.Err(err).Str("func", "listingRepository.Save").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrListingAlreadyExists, listing.ID)
		}
		r.logger.Err(err).
			Str("func", "listingRepository.Save").
			Str("listing_id", listing.ID).
			Msg("failed to insert listing")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		r.logger.Error().
			Err(err).
			Str("func", "listingRepository.Save").
			Str("listing_id", listing.ID).
			Msg("listing insert affected no rows")
		return ErrListingNotSaved
	}

	return nil
}

// Browse implements [ListingRepository].
func (r *listingRepository) Browse(ctx context.Context, filter models.ListingFilter, now time.Time) ([]models.TokenListing, error) {
	query, args, err := buildBrowseListingsQuery(filter, now)
	if err != nil {
		r.logger.Err(err).Str("func", "listingRepository.Browse").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "listingRepository.Browse").Msg("failed to execute browse query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.TokenListing, 0, 16)

	for rows.Next() {
		var (
			l                  models.TokenListing
			payment            string
			endTime, createdAt int64
		)

		scanErr := rows.Scan(
			&l.ID, &l.Seller, &l.TokenAddress, &l.TokenName, &l.TokenSymbol,
			&l.Amount, &l.PricePerToken, &payment,
			&l.ReferralActive, &l.ReferralPercent, &endTime, &l.Active,
			&l.Metadata.ProjectWebsite, &l.Metadata.SocialMediaLink, &l.Metadata.TokenImageURL,
			&l.Metadata.TelegramURL, &l.Metadata.ProjectDescription,
			&createdAt,
		)
		if scanErr != nil {
			r.logger.Err(scanErr).Str("func", "listingRepository.Browse").Msg("failed to scan listing row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		l.PaymentToken = models.PaymentToken(payment)
		l.EndTime = time.UnixMilli(endTime)
		l.CreatedAt = time.UnixMilli(createdAt)
		listings = append(listings, l)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logger.Err(rowsErr).Str("func", "listingRepository.Browse").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	sortByPrice(listings, filter.Sort)
	return listings, nil
}

// Renew implements [ListingRepository].
func (r *listingRepository) Renew(ctx context.Context, listing models.TokenListing, now time.Time) error {
	query, args, err := buildRenewListingQuery(listing, now)
	if err != nil {
		r.logger.Err(err).Str("func", "listingRepository.Renew").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// a live listing with the same id is left alone and affects no rows
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "listingRepository.Renew").
			Str("listing_id", listing.ID).
			Msg("failed to renew listing")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// sortByPrice reorders listings by price per token for the price sorts. The
// newest order comes from the query and is kept for equal prices.
func sortByPrice(listings []models.TokenListing, order models.ListingSort) {
	if order != models.SortPriceAsc && order != models.SortPriceDesc {
		return
	}

	prices := make(map[string]decimal.Decimal, len(listings))
	for _, l := range listings {
		p, err := decimal.NewFromString(l.PricePerToken)
		if err != nil {
			p = decimal.Zero
		}
		prices[l.ID] = p
	}

	sort.SliceStable(listings, func(i, j int) bool {
		a, b := prices[listings[i].ID], prices[listings[j].ID]
		if order == models.SortPriceDesc {
			return a.GreaterThan(b)
		}
		return a.LessThan(b)
	})
}
