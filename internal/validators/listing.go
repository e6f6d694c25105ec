package validators

import (
	"context"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-property-dex/models"
	"github.com/ethereum/go-ethereum/common"
)

// Field name constants accepted by [ListingValidator].
const (
	FieldTokenAddress    = "token_address"
	FieldAmount          = "amount"
	FieldPricePerToken   = "price_per_token"
	FieldPaymentToken    = "payment_token"
	FieldDuration        = "duration"
	FieldReferral        = "referral"
	FieldMetadataLinks   = "metadata_links"
	FieldDescription     = "description"
	FieldListingSeller   = "seller"
	FieldListingEndTime  = "end_time"
	FieldListingIdentity = "id"
)

const (
	minTokenAddressLen = 42
	minDurationDays    = 1
	maxDurationDays    = 90
	minReferralPercent = 1
	maxReferralPercent = 100
	maxURLLen          = 256
	maxDescriptionLen  = 1024
)

// ListingValidator validates the list-token form ([models.ListingDraft]) and
// stored listings ([models.TokenListing]).
type ListingValidator struct{}

func NewListingValidator() *ListingValidator {
	return &ListingValidator{}
}

// Validate implements [Validator].
func (v *ListingValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch data := value.(type) {
	case models.ListingDraft:
		return v.validateDraft(ctx, data, fields...)
	case *models.ListingDraft:
		return v.validateDraft(ctx, *data, fields...)
	case models.TokenListing:
		return v.validateListing(ctx, data, fields...)
	case *models.TokenListing:
		return v.validateListing(ctx, *data, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ListingValidator) validateDraft(_ context.Context, draft models.ListingDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldTokenAddress, FieldAmount, FieldPricePerToken, FieldPaymentToken,
			FieldDuration, FieldReferral, FieldMetadataLinks, FieldDescription,
		}
	}

	for _, f := range fields {
		switch f {
		case FieldTokenAddress:
			if !isTokenAddress(draft.TokenAddress) {
				return ErrInvalidTokenAddress
			}
		case FieldAmount:
			if _, ok := positiveDecimal(draft.Amount); !ok {
				return ErrInvalidAmount
			}
		case FieldPricePerToken:
			if _, ok := positiveDecimal(draft.PricePerToken); !ok {
				return ErrInvalidPrice
			}
		case FieldPaymentToken:
			if !slices.Contains(models.PaymentTokens, draft.PaymentToken) {
				return ErrInvalidPaymentToken
			}
		case FieldDuration:
			if draft.DurationDays < minDurationDays || draft.DurationDays > maxDurationDays {
				return ErrInvalidDuration
			}
		case FieldReferral:
			if draft.ReferralActive && (draft.ReferralPercent < minReferralPercent || draft.ReferralPercent > maxReferralPercent) {
				return ErrInvalidReferral
			}
		case FieldMetadataLinks:
			for _, link := range []string{
				draft.Metadata.ProjectWebsite,
				draft.Metadata.SocialMediaLink,
				draft.Metadata.TokenImageURL,
				draft.Metadata.TelegramURL,
			} {
				if !isOptionalURL(link) {
					return ErrInvalidURL
				}
			}
		case FieldDescription:
			if len(draft.Metadata.ProjectDescription) > maxDescriptionLen {
				return ErrDescriptionTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ListingValidator) validateListing(_ context.Context, listing models.TokenListing, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldListingIdentity, FieldListingSeller, FieldTokenAddress, FieldAmount, FieldPricePerToken, FieldPaymentToken, FieldListingEndTime}
	}

	for _, f := range fields {
		switch f {
		case FieldListingIdentity:
			if strings.TrimSpace(listing.ID) == "" {
				return ErrInvalidListingID
			}
		case FieldListingSeller:
			if !common.IsHexAddress(listing.Seller) {
				return ErrInvalidSellerAddress
			}
		case FieldTokenAddress:
			if !isTokenAddress(listing.TokenAddress) {
				return ErrInvalidTokenAddress
			}
		case FieldAmount:
			if _, ok := positiveDecimal(listing.Amount); !ok {
				return ErrInvalidAmount
			}
		case FieldPricePerToken:
			if _, ok := positiveDecimal(listing.PricePerToken); !ok {
				return ErrInvalidPrice
			}
		case FieldPaymentToken:
			if !slices.Contains(models.PaymentTokens, listing.PaymentToken) {
				return ErrInvalidPaymentToken
			}
		case FieldListingEndTime:
			if listing.EndTime.IsZero() {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isTokenAddress(addr string) bool {
	return len(addr) >= minTokenAddressLen && common.IsHexAddress(addr)
}

func isOptionalURL(raw string) bool {
	if raw == "" {
		return true
	}
	if len(raw) > maxURLLen {
		return false
	}

	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
