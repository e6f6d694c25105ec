// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-property-dex/internal/app"
	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/MKhiriev/go-property-dex/internal/validators"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	defaultListingDays     = "30"
	defaultReferralPercent = "5"
	maxDescriptionChars    = 1024
)

// listingInput holds the raw form values bound to the huh fields.
type listingInput struct {
	tokenAddress    string
	tokenName       string
	tokenSymbol     string
	amount          string
	price           string
	payment         models.PaymentToken
	days            string
	referralActive  bool
	referralPercent string
	website         string
	social          string
	image           string
	telegram        string
	description     string
}

func defaultListingInput() listingInput {
	return listingInput{
		payment:         models.PaymentPRDX,
		days:            defaultListingDays,
		referralPercent: defaultReferralPercent,
	}
}

func (in listingInput) draft() models.ListingDraft {
	days, _ := strconv.Atoi(strings.TrimSpace(in.days))
	percent, _ := strconv.Atoi(strings.TrimSpace(in.referralPercent))

	return models.ListingDraft{
		TokenAddress:    strings.TrimSpace(in.tokenAddress),
		TokenName:       strings.TrimSpace(in.tokenName),
		TokenSymbol:     strings.TrimSpace(in.tokenSymbol),
		Amount:          strings.TrimSpace(in.amount),
		PricePerToken:   strings.TrimSpace(in.price),
		PaymentToken:    in.payment,
		DurationDays:    days,
		ReferralActive:  in.referralActive,
		ReferralPercent: percent,
		Metadata: models.TokenMetadata{
			ProjectWebsite:     strings.TrimSpace(in.website),
			SocialMediaLink:    strings.TrimSpace(in.social),
			TokenImageURL:      strings.TrimSpace(in.image),
			TelegramURL:        strings.TrimSpace(in.telegram),
			ProjectDescription: strings.TrimSpace(in.description),
		},
	}
}

// ListTokenModel is the list-token form. A stored listing opens the
// marketplace.
type ListTokenModel struct {
	ctx       context.Context
	listings  service.ListingService
	state     *walletState
	validator validators.Validator

	form       *huh.Form
	in         listingInput
	submitting bool
}

func NewListTokenModel(ctx context.Context, listings service.ListingService, state *walletState) *ListTokenModel {
	return &ListTokenModel{
		ctx:       ctx,
		listings:  listings,
		state:     state,
		validator: validators.NewListingValidator(),
	}
}

func (m *ListTokenModel) Init() tea.Cmd {
	m.in = defaultListingInput()
	m.submitting = false
	m.rebuildForm()
	return m.form.Init()
}

func (m *ListTokenModel) capturesInput() bool {
	return !m.submitting
}

func (m *ListTokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prefillListingMsg:
		m.in = defaultListingInput()
		m.in.tokenAddress = msg.token.Address
		m.in.tokenName = msg.token.Name
		m.in.tokenSymbol = msg.token.Symbol
		m.in.amount = msg.token.TotalSupply
		m.submitting = false
		m.rebuildForm()
		return m, m.form.Init()

	case listingCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.rebuildForm()
			return m, tea.Batch(m.form.Init(), notify(humanizeError(msg.err, app.MsgTokenListFailed), true))
		}
		return m, tea.Batch(notify(app.MsgTokenListed, false), navigate(pageMarketplace, nil))
	}

	if m.submitting || m.form == nil {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return m, navigate(pageHome, nil)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f

		if m.form.State == huh.StateCompleted {
			if !m.state.connected() {
				m.rebuildForm()
				return m, tea.Batch(m.form.Init(), notify(app.MsgConnectWalletFirst, true))
			}
			m.submitting = true
			return m, m.submit(m.in.draft())
		}
		if m.form.State == huh.StateAborted {
			return m, navigate(pageHome, nil)
		}
	}
	return m, cmd
}

func (m *ListTokenModel) submit(draft models.ListingDraft) tea.Cmd {
	ctx, listings := m.ctx, m.listings
	return func() tea.Msg {
		listing, err := listings.Create(ctx, draft)
		return listingCreatedMsg{listing: listing, err: err}
	}
}

func (m *ListTokenModel) rebuildForm() {
	paymentOptions := make([]huh.Option[models.PaymentToken], 0, len(models.PaymentTokens))
	for _, p := range models.PaymentTokens {
		paymentOptions = append(paymentOptions, huh.NewOption(string(p), p))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Token Address").
				Placeholder("0x...").
				Value(&m.in.tokenAddress).
				Validate(m.validateField(validators.FieldTokenAddress, func(d *models.ListingDraft, v string) { d.TokenAddress = v })),

			huh.NewInput().
				Title("Token Name").
				Description("Optional, read from the token when empty").
				Value(&m.in.tokenName),

			huh.NewInput().
				Title("Token Symbol").
				Description("Optional, read from the token when empty").
				Value(&m.in.tokenSymbol),

			huh.NewInput().
				Title("Amount").
				Description("Number of tokens to sell").
				Value(&m.in.amount).
				Validate(m.validateField(validators.FieldAmount, func(d *models.ListingDraft, v string) { d.Amount = v })),

			huh.NewInput().
				Title("Price per Token").
				Value(&m.in.price).
				Validate(m.validateField(validators.FieldPricePerToken, func(d *models.ListingDraft, v string) { d.PricePerToken = v })),

			huh.NewSelect[models.PaymentToken]().
				Title("Payment Token").
				Options(paymentOptions...).
				Value(&m.in.payment),

			huh.NewInput().
				Title("Duration (days)").
				Description("1 to 90").
				Value(&m.in.days).
				Validate(m.validateNumber(validators.FieldDuration, validators.ErrInvalidDuration, func(d *models.ListingDraft, n int) { d.DurationDays = n })),
		).Title("Listing Details"),

		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable referral rewards?").
				Description("Referrers earn a share of each purchase").
				Affirmative("Yes").
				Negative("No").
				Value(&m.in.referralActive),
		).Title("Referral"),

		huh.NewGroup(
			huh.NewInput().
				Title("Referral Percent").
				Description("1 to 100").
				Value(&m.in.referralPercent).
				Validate(m.validateNumber(validators.FieldReferral, validators.ErrInvalidReferral, func(d *models.ListingDraft, n int) {
					d.ReferralActive = true
					d.ReferralPercent = n
				})),
		).WithHideFunc(func() bool { return !m.in.referralActive }),

		huh.NewGroup(
			huh.NewInput().
				Title("Project Website").
				Placeholder("https://").
				Value(&m.in.website).
				Validate(m.validateLink),

			huh.NewInput().
				Title("Social Media Link").
				Value(&m.in.social).
				Validate(m.validateLink),

			huh.NewInput().
				Title("Token Image URL").
				Value(&m.in.image).
				Validate(m.validateLink),

			huh.NewInput().
				Title("Telegram URL").
				Value(&m.in.telegram).
				Validate(m.validateLink),

			huh.NewText().
				Title("Project Description").
				CharLimit(maxDescriptionChars).
				Value(&m.in.description),
		).Title("Token Metadata"),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(false)
}

func (m *ListTokenModel) validateField(field string, set func(d *models.ListingDraft, v string)) func(string) error {
	return func(v string) error {
		var draft models.ListingDraft
		set(&draft, strings.TrimSpace(v))
		return m.validator.Validate(m.ctx, draft, field)
	}
}

func (m *ListTokenModel) validateNumber(field string, invalid error, set func(d *models.ListingDraft, n int)) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return invalid
		}
		var draft models.ListingDraft
		set(&draft, n)
		return m.validator.Validate(m.ctx, draft, field)
	}
}

func (m *ListTokenModel) validateLink(v string) error {
	draft := models.ListingDraft{Metadata: models.TokenMetadata{ProjectWebsite: strings.TrimSpace(v)}}
	return m.validator.Validate(m.ctx, draft, validators.FieldMetadataLinks)
}

func (m *ListTokenModel) View() string {
	if m.submitting {
		return renderPage("LIST TOKEN", "Listing "+valueOrDash(m.in.draft().TokenSymbol)+" on the marketplace...", "")
	}
	if m.form == nil {
		return renderPage("LIST TOKEN", "", "esc: back")
	}
	return renderPage("LIST TOKEN", m.form.View(), "enter: next │ shift+tab: previous │ esc: back")
}
