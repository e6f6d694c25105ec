package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-property-dex/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() models.ListingDraft {
	return models.ListingDraft{
		TokenAddress:   "0x1234567890123456789012345678901234567890",
		Amount:         "1000",
		PricePerToken:  "0.5",
		PaymentToken:   models.PaymentUSDC,
		DurationDays:   30,
		ReferralActive: false,
		Metadata: models.TokenMetadata{
			ProjectWebsite: "https://beachvilla.example",
		},
	}
}

func TestListingValidator_Dispatch(t *testing.T) {
	v := NewListingValidator()
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	require.NoError(t, v.Validate(ctx, validDraft()))

	d := validDraft()
	require.NoError(t, v.Validate(ctx, &d))
	require.ErrorIs(t, v.Validate(ctx, d, "nope"), ErrUnknownField)
}

func TestListingValidator_DraftRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.ListingDraft)
		want   error
	}{
		{name: "short address", mutate: func(d *models.ListingDraft) { d.TokenAddress = "0x1234" }, want: ErrInvalidTokenAddress},
		{name: "non hex address", mutate: func(d *models.ListingDraft) { d.TokenAddress = "0xZZ34567890123456789012345678901234567890" }, want: ErrInvalidTokenAddress},
		{name: "empty amount", mutate: func(d *models.ListingDraft) { d.Amount = "" }, want: ErrInvalidAmount},
		{name: "zero amount", mutate: func(d *models.ListingDraft) { d.Amount = "0" }, want: ErrInvalidAmount},
		{name: "bad price", mutate: func(d *models.ListingDraft) { d.PricePerToken = "cheap" }, want: ErrInvalidPrice},
		{name: "unknown payment", mutate: func(d *models.ListingDraft) { d.PaymentToken = "DAI" }, want: ErrInvalidPaymentToken},
		{name: "prdx payment", mutate: func(d *models.ListingDraft) { d.PaymentToken = models.PaymentPRDX }},
		{name: "zero duration", mutate: func(d *models.ListingDraft) { d.DurationDays = 0 }, want: ErrInvalidDuration},
		{name: "91 days", mutate: func(d *models.ListingDraft) { d.DurationDays = 91 }, want: ErrInvalidDuration},
		{name: "90 days", mutate: func(d *models.ListingDraft) { d.DurationDays = 90 }},
		{
			name:   "active referral without percent",
			mutate: func(d *models.ListingDraft) { d.ReferralActive = true; d.ReferralPercent = 0 },
			want:   ErrInvalidReferral,
		},
		{
			name:   "active referral above 100",
			mutate: func(d *models.ListingDraft) { d.ReferralActive = true; d.ReferralPercent = 101 },
			want:   ErrInvalidReferral,
		},
		{name: "inactive referral ignores percent", mutate: func(d *models.ListingDraft) { d.ReferralPercent = 500 }},
		{name: "relative url", mutate: func(d *models.ListingDraft) { d.Metadata.TelegramURL = "t.me/prdx" }, want: ErrInvalidURL},
		{
			name:   "url too long",
			mutate: func(d *models.ListingDraft) { d.Metadata.TokenImageURL = "https://x.io/" + strings.Repeat("a", 250) },
			want:   ErrInvalidURL,
		},
		{
			name:   "description too long",
			mutate: func(d *models.ListingDraft) { d.Metadata.ProjectDescription = strings.Repeat("a", 1025) },
			want:   ErrDescriptionTooLong,
		},
	}

	v := NewListingValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
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

func TestListingValidator_StoredListing(t *testing.T) {
	listing := models.TokenListing{
		ID:            "listing-1",
		Seller:        "0xabc0000000000000000000000000000000000001",
		TokenAddress:  "0x1234567890123456789012345678901234567890",
		Amount:        "10",
		PricePerToken: "1",
		PaymentToken:  models.PaymentPRDX,
		EndTime:       time.Now().Add(time.Hour),
	}
	v := NewListingValidator()

	require.NoError(t, v.Validate(context.Background(), listing))

	listing.Seller = "nobody"
	assert.ErrorIs(t, v.Validate(context.Background(), &listing), ErrInvalidSellerAddress)

	listing.Seller = "0xabc0000000000000000000000000000000000001"
	listing.ID = ""
	assert.ErrorIs(t, v.Validate(context.Background(), listing), ErrInvalidListingID)
}
