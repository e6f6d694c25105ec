package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-property-dex/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	listingsTable      = "listings"
	createdTokensTable = "created_tokens"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var listingColumns = []string{
	"id", "seller", "token_address", "token_name", "token_symbol",
	"amount", "price_per_token", "payment_token",
	"referral_active", "referral_percent", "end_time", "active",
	"project_website", "social_media_link", "token_image_url", "telegram_url", "project_description",
	"created_at",
}

var createdTokenColumns = []string{
	"address", "tx_hash", "name", "symbol", "total_supply", "decimals", "creator", "created_at",
}

func insertListing(l models.TokenListing) sq.InsertBuilder {
	return psql.Insert(listingsTable).
		Columns(listingColumns...).
		Values(
			l.ID, l.Seller, l.TokenAddress, l.TokenName, l.TokenSymbol,
			l.Amount, l.PricePerToken, string(l.PaymentToken),
			l.ReferralActive, l.ReferralPercent, l.EndTime.UnixMilli(), l.Active,
			l.Metadata.ProjectWebsite, l.Metadata.SocialMediaLink, l.Metadata.TokenImageURL,
			l.Metadata.TelegramURL, l.Metadata.ProjectDescription,
			l.CreatedAt.UnixMilli(),
		)
}

func buildSaveListingQuery(l models.TokenListing) (string, []any, error) {
	return insertListing(l).ToSql()
}

// buildBrowseListingsQuery selects the live listings matching filter. Price
// ordering is applied after loading because prices are decimal strings.
func buildBrowseListingsQuery(filter models.ListingFilter, now time.Time) (string, []any, error) {
	q := psql.Select(listingColumns...).
		From(listingsTable).
		Where(sq.Eq{"active": true}).
		Where(sq.Gt{"end_time": now.UnixMilli()})

	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where("instr(lower(token_name), ?) > 0", strings.ToLower(search))
	}
	if filter.Payment != "" {
		q = q.Where(sq.Eq{"payment_token": string(filter.Payment)})
	}
	if filter.ReferralOnly {
		q = q.Where(sq.Eq{"referral_active": true})
	}

	return q.OrderBy("end_time DESC", "created_at DESC", "id").ToSql()
}

// buildRenewListingQuery inserts l, overwriting a stored listing with the same
// id only when that one has ended or was deactivated.
func buildRenewListingQuery(l models.TokenListing, now time.Time) (string, []any, error) {
	updates := make([]string, 0, len(listingColumns)-1)
	for _, c := range listingColumns[1:] {
		updates = append(updates, c+" = excluded."+c)
	}

	return insertListing(l).
		Suffix(
			"ON CONFLICT(id) DO UPDATE SET "+strings.Join(updates, ", ")+
				" WHERE "+listingsTable+".active = 0 OR "+listingsTable+".end_time <= ?",
			now.UnixMilli(),
		).
		ToSql()
}

func buildSaveCreatedTokenQuery(t models.CreatedToken) (string, []any, error) {
	return psql.Insert(createdTokensTable).
		Columns(createdTokenColumns...).
		Values(t.Address, t.TxHash, t.Name, t.Symbol, t.TotalSupply, t.Decimals, t.Creator, t.CreatedAt.UnixMilli()).
		ToSql()
}

func buildListCreatedTokensQuery(creator string) (string, []any, error) {
	return psql.Select(createdTokenColumns...).
		From(createdTokensTable).
		Where("lower(creator) = ?", strings.ToLower(creator)).
		OrderBy("created_at DESC").
		ToSql()
}
