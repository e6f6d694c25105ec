package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreatedToken(created time.Time) models.CreatedToken {
	return models.CreatedToken{
		Address:     "0x9999000000000000000000000000000000000001",
		TxHash:      "0x" + "ab" + "00000000000000000000000000000000000000000000000000000000000000",
		Name:        "Beach Villa Token",
		Symbol:      "BVT",
		TotalSupply: "1000000",
		Decimals:    18,
		Creator:     "0xAbC0000000000000000000000000000000000001",
		CreatedAt:   created,
	}
}

func TestTokenRepository_Save(t *testing.T) {
	token := testCreatedToken(time.UnixMilli(1_700_000_000_000))

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO created_tokens")).
			WithArgs(token.Address, token.TxHash, token.Name, token.Symbol, token.TotalSupply,
				int64(token.Decimals), token.Creator, token.CreatedAt.UnixMilli()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := NewTokenRepository(newDBFromSQL(db), logger.Nop()).Save(context.Background(), token)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec("INSERT INTO created_tokens").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

		err := NewTokenRepository(newDBFromSQL(db), logger.Nop()).Save(context.Background(), token)

		assert.ErrorIs(t, err, ErrTokenAlreadyExists)
	})

	t.Run("no rows", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec("INSERT INTO created_tokens").WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewTokenRepository(newDBFromSQL(db), logger.Nop()).Save(context.Background(), token)

		assert.ErrorIs(t, err, ErrTokenNotSaved)
	})
}

func TestTokenRepository_ListByCreator(t *testing.T) {
	token := testCreatedToken(time.UnixMilli(1_700_000_000_000))

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT address, tx_hash")).
			WithArgs("0xabc0000000000000000000000000000000000001").
			WillReturnRows(sqlmock.NewRows(createdTokenColumns).AddRow(
				token.Address, token.TxHash, token.Name, token.Symbol, token.TotalSupply,
				int64(token.Decimals), token.Creator, token.CreatedAt.UnixMilli(),
			))

		got, err := NewTokenRepository(newDBFromSQL(db), logger.Nop()).
			ListByCreator(context.Background(), token.Creator)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, token.Address, got[0].Address)
		assert.Equal(t, uint8(18), got[0].Decimals)
		assert.True(t, token.CreatedAt.Equal(got[0].CreatedAt))
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery("SELECT address").WillReturnError(errors.New("boom"))

		_, err := NewTokenRepository(newDBFromSQL(db), logger.Nop()).
			ListByCreator(context.Background(), token.Creator)

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
