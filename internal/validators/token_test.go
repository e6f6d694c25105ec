// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-property-dex/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTokenData() models.TokenData {
	return models.TokenData{
		Name:        "Beach Villa Token",
		Symbol:      "BVT",
		TotalSupply: "1000000",
		Decimals:    18,
	}
}

func TestTokenValidator_Dispatch(t *testing.T) {
	v := NewTokenValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validTokenData()))
	})

	t.Run("pointer", func(t *testing.T) {
		d := validTokenData()
		require.NoError(t, v.Validate(ctx, &d))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validTokenData(), "color"), ErrUnknownField)
	})
}

func TestTokenValidator_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.TokenData)
		want   error
	}{
		{name: "empty name", mutate: func(d *models.TokenData) { d.Name = "" }, want: ErrInvalidTokenName},
		{name: "name too long", mutate: func(d *models.TokenData) { d.Name = strings.Repeat("a", 65) }, want: ErrInvalidTokenName},
		{name: "name of 64 runes", mutate: func(d *models.TokenData) { d.Name = strings.Repeat("é", 64) }},
		{name: "empty symbol", mutate: func(d *models.TokenData) { d.Symbol = "" }, want: ErrInvalidTokenSymbol},
		{name: "symbol too long", mutate: func(d *models.TokenData) { d.Symbol = "ABCDEFGHIJK" }, want: ErrInvalidTokenSymbol},
		{name: "decimals above 18", mutate: func(d *models.TokenData) { d.Decimals = 19 }, want: ErrInvalidDecimals},
		{name: "zero decimals", mutate: func(d *models.TokenData) { d.Decimals = 0 }},
		{name: "empty supply", mutate: func(d *models.TokenData) { d.TotalSupply = "" }, want: ErrInvalidTotalSupply},
		{name: "zero supply", mutate: func(d *models.TokenData) { d.TotalSupply = "0" }, want: ErrInvalidTotalSupply},
		{name: "negative supply", mutate: func(d *models.TokenData) { d.TotalSupply = "-5" }, want: ErrInvalidTotalSupply},
		{name: "non numeric supply", mutate: func(d *models.TokenData) { d.TotalSupply = "lots" }, want: ErrInvalidTotalSupply},
		{name: "fractional supply", mutate: func(d *models.TokenData) { d.TotalSupply = "1000.5" }},
		{
			name:   "supply finer than decimals",
			mutate: func(d *models.TokenData) { d.TotalSupply = "1.25"; d.Decimals = 1 },
			want:   ErrInvalidTotalSupply,
		},
	}

	v := NewTokenValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validTokenData()
			tt.mutate(&d)

			err := v.Validate(context.Background(), d)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTokenValidator_FieldScoping(t *testing.T) {
	d := validTokenData()
	d.Symbol = ""

	assert.NoError(t, NewTokenValidator().Validate(context.Background(), d, FieldTokenName, FieldTotalSupply))
}
