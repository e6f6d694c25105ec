package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/models"
)

type tokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewTokenRepository constructs a [TokenRepository] on db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	return &tokenRepository{
		DB:     db,
		logger: logger,
	}
}

// Save implements [TokenRepository].
func (r *tokenRepository) Save(ctx context.Context, token models.CreatedToken) error {
	query, args, err := buildSaveCreatedTokenQuery(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrTokenAlreadyExists, token.Address)
		}
		r.logger.Err(err).
			Str("func", "tokenRepository.Save").
			Str("address", token.Address).
			Msg("failed to insert created token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, err := result.RowsAffected(); err != nil || affected == 0 {
		return ErrTokenNotSaved
	}

	return nil
}

// ListByCreator implements [TokenRepository].
func (r *tokenRepository) ListByCreator(ctx context.Context, creator string) ([]models.CreatedToken, error) {
	query, args, err := buildListCreatedTokensQuery(creator)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "tokenRepository.ListByCreator").
			Str("creator", creator).
			Msg("failed to list created tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tokens := make([]models.CreatedToken, 0, 8)
	for rows.Next() {
		var (
			t         models.CreatedToken
			createdAt int64
		)
		if err = rows.Scan(&t.Address, &t.TxHash, &t.Name, &t.Symbol, &t.TotalSupply, &t.Decimals, &t.Creator, &createdAt); err != nil {
			r.logger.Err(err).Str("func", "tokenRepository.ListByCreator").Msg("failed to scan created token row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		t.CreatedAt = time.UnixMilli(createdAt)
		tokens = append(tokens, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tokens, nil
}
