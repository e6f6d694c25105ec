// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a decimal amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTooManyDecimals is returned when an amount has more fractional
	// digits than the token supports.
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// FormatUnits renders an amount given in the smallest unit as a decimal
// string with the given number of decimals. Trailing fractional zeros are
// dropped but at least one fractional digit is kept, so 2*10^18 with 18
// decimals formats as "2.0" and 15*10^17 as "1.5".
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		amount = new(big.Int)
	}

	s := decimal.NewFromBigInt(amount, -int32(decimals)).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// ParseUnits converts a human-readable decimal amount into the smallest unit
// for a token with the given decimals.
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	if -d.Exponent() > int32(decimals) && !d.Equal(d.Truncate(int32(decimals))) {
		return nil, fmt.Errorf("%w: %q allows %d", ErrTooManyDecimals, amount, decimals)
	}

	return d.Shift(int32(decimals)).BigInt(), nil
}
