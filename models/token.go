// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenData holds the parameters of a property token to create.
type TokenData struct {
	Name        string
	Symbol      string
	TotalSupply string
	Decimals    uint8
}

// CreatedToken is the outcome of a token creation.
type CreatedToken struct {
	Address     string
	TxHash      string
	Name        string
	Symbol      string
	TotalSupply string
	Decimals    uint8
	Creator     string
	CreatedAt   time.Time
}
