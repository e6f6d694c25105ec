// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-property-dex/models"
	"github.com/shopspring/decimal"
)

// Field name constants accepted by [TokenValidator].
const (
	FieldTokenName   = "name"
	FieldTokenSymbol = "symbol"
	FieldTotalSupply = "total_supply"
	FieldDecimals    = "decimals"
)

const (
	maxTokenNameLen   = 64
	maxTokenSymbolLen = 10
	maxDecimals       = 18
)

// TokenValidator validates the create-token form ([models.TokenData]).
type TokenValidator struct{}

func NewTokenValidator() *TokenValidator {
	return &TokenValidator{}
}

// Validate implements [Validator]. Without fields every rule is checked.
func (v *TokenValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch data := value.(type) {
	case models.TokenData:
		return v.validateTokenData(ctx, data, fields...)
	case *models.TokenData:
		return v.validateTokenData(ctx, *data, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TokenValidator) validateTokenData(_ context.Context, data models.TokenData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTokenName, FieldTokenSymbol, FieldDecimals, FieldTotalSupply}
	}

	for _, f := range fields {
		switch f {
		case FieldTokenName:
			if !lengthBetween(data.Name, 1, maxTokenNameLen) {
				return ErrInvalidTokenName
			}
		case FieldTokenSymbol:
			if !lengthBetween(data.Symbol, 1, maxTokenSymbolLen) {
				return ErrInvalidTokenSymbol
			}
		case FieldDecimals:
			if data.Decimals > maxDecimals {
				return ErrInvalidDecimals
			}
		case FieldTotalSupply:
			supply, ok := positiveDecimal(data.TotalSupply)
			if !ok || -supply.Exponent() > int32(data.Decimals) && !supply.Equal(supply.Truncate(int32(data.Decimals))) {
				return ErrInvalidTotalSupply
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}

func positiveDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
