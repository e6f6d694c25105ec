// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PaymentToken is the asset a listing is paid in.
type PaymentToken string

const (
	// PaymentPRDX pays with the governance token.
	PaymentPRDX PaymentToken = "PRDX"
	// PaymentUSDC pays with the stable token.
	PaymentUSDC PaymentToken = "USDC"
)

// PaymentTokens lists the accepted payment tokens in display order.
var PaymentTokens = []PaymentToken{PaymentPRDX, PaymentUSDC}

// TokenMetadata holds the optional project links shown on a listing card.
type TokenMetadata struct {
	ProjectWebsite     string `json:"project_website,omitempty"`
	SocialMediaLink    string `json:"social_media_link,omitempty"`
	TokenImageURL      string `json:"token_image_url,omitempty"`
	TelegramURL        string `json:"telegram_url,omitempty"`
	ProjectDescription string `json:"project_description,omitempty"`
}

// TokenListing is a quantity of a property token offered for sale.
type TokenListing struct {
	ID              string        `json:"id"`
	Seller          string        `json:"seller"`
	TokenAddress    string        `json:"token_address"`
	TokenName       string        `json:"token_name"`
	TokenSymbol     string        `json:"token_symbol"`
	Amount          string        `json:"amount"`
	PricePerToken   string        `json:"price_per_token"`
	PaymentToken    PaymentToken  `json:"payment_token"`
	ReferralActive  bool          `json:"referral_active"`
	ReferralPercent int           `json:"referral_percent"`
	EndTime         time.Time     `json:"end_time"`
	Active          bool          `json:"active"`
	Metadata        TokenMetadata `json:"metadata"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ListingDraft is what the seller fills in on the list-token form.
type ListingDraft struct {
	TokenAddress    string
	TokenName       string
	TokenSymbol     string
	Amount          string
	PricePerToken   string
	PaymentToken    PaymentToken
	DurationDays    int
	ReferralActive  bool
	ReferralPercent int
	Metadata        TokenMetadata
}

// ListingSort is the marketplace ordering.
type ListingSort int

const (
	// SortNewest orders by expiry, latest first.
	SortNewest ListingSort = iota
	// SortPriceAsc orders by unit price, cheapest first.
	SortPriceAsc
	// SortPriceDesc orders by unit price, most expensive first.
	SortPriceDesc
)

// ListingSorts lists the sort options in the order the UI cycles through them.
var ListingSorts = []ListingSort{SortNewest, SortPriceAsc, SortPriceDesc}

// String returns the label shown in the marketplace header.
func (s ListingSort) String() string {
	switch s {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	default:
		return "Newest First"
	}
}

// ListingFilter narrows the marketplace grid.
type ListingFilter struct {
	// Search is matched case-insensitively against the token name.
	Search string
	// Payment keeps only listings paid in this token. Empty means all.
	Payment PaymentToken
	// ReferralOnly keeps only listings with an active referral program.
	ReferralOnly bool
	Sort         ListingSort
}
