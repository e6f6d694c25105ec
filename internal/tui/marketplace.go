// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/app"
	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/MKhiriev/go-property-dex/internal/utils"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MarketplaceModel browses active listings with search, payment filter,
// referral tab and sort order.
type MarketplaceModel struct {
	ctx      context.Context
	listings service.ListingService
	state    *walletState
	now      func() time.Time

	search    textinput.Model
	searching bool
	filter    models.ListingFilter

	items   []models.TokenListing
	idx     int
	loading bool
	loadErr error
	detail  *models.TokenListing
}

func NewMarketplaceModel(ctx context.Context, listings service.ListingService, state *walletState) *MarketplaceModel {
	in := textinput.New()
	in.Placeholder = "Search by token name"
	in.Prompt = "Search: "
	in.PromptStyle = accentStyle
	in.CharLimit = 64
	in.Width = 40

	return &MarketplaceModel{
		ctx:      ctx,
		listings: listings,
		state:    state,
		now:      time.Now,
		search:   in,
	}
}

func (m *MarketplaceModel) Init() tea.Cmd {
	m.detail = nil
	m.searching = false
	m.search.Blur()
	return m.load()
}

func (m *MarketplaceModel) capturesInput() bool {
	return m.searching
}

func (m *MarketplaceModel) load() tea.Cmd {
	m.loading = true
	ctx, listings, filter := m.ctx, m.listings, m.filter
	return func() tea.Msg {
		items, err := listings.Browse(ctx, filter)
		return listingsLoadedMsg{listings: items, err: err}
	}
}

func (m *MarketplaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listingsLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err != nil {
			m.items = nil
			return m, notify(app.MsgLoadListingsFailed, true)
		}
		m.items = msg.listings
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.searching:
			return m.updateSearch(msg)
		case m.detail != nil:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MarketplaceModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		m.filter.Search = strings.TrimSpace(m.search.Value())
		m.idx = 0
		return m, m.load()
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.filter.Search)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *MarketplaceModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.detail = nil
	case key.Matches(msg, keys.copy):
		return m, copyToClipboard("Token address", m.detail.TokenAddress)
	case key.Matches(msg, keys.copyWallet):
		return m, copyToClipboard("Seller address", m.detail.Seller)
	}
	return m, nil
}

func (m *MarketplaceModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageHome, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.items) > 0 {
			item := m.items[m.idx]
			m.detail = &item
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.payment):
		m.filter.Payment = nextPayment(m.filter.Payment)
		m.idx = 0
		return m, m.load()
	case key.Matches(msg, keys.tab):
		m.filter.ReferralOnly = !m.filter.ReferralOnly
		m.idx = 0
		return m, m.load()
	case key.Matches(msg, keys.sort):
		m.filter.Sort = nextSort(m.filter.Sort)
		return m, m.load()
	case key.Matches(msg, keys.listToken):
		if !m.state.connected() {
			return m, notify(app.MsgConnectWalletFirst, true)
		}
		return m, navigate(pageListToken, nil)
	}
	return m, nil
}

// nextPayment cycles All → PRDX → USDC → All.
func nextPayment(current models.PaymentToken) models.PaymentToken {
	if current == "" {
		return models.PaymentTokens[0]
	}
	for i, p := range models.PaymentTokens {
		if p == current && i+1 < len(models.PaymentTokens) {
			return models.PaymentTokens[i+1]
		}
	}
	return ""
}

func nextSort(current models.ListingSort) models.ListingSort {
	for i, s := range models.ListingSorts {
		if s == current {
			return models.ListingSorts[(i+1)%len(models.ListingSorts)]
		}
	}
	return models.SortNewest
}

func (m *MarketplaceModel) View() string {
	if m.detail != nil {
		return renderPage("LISTING", m.renderDetail(*m.detail), "y: copy token address │ a: copy seller │ esc: back")
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	if m.searching || m.filter.Search != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString("Loading listings...")
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(app.MsgLoadListingsFailed))
	case len(m.items) == 0:
		b.WriteString(helpStyle.Render(app.MsgNoListings))
	default:
		b.WriteString(m.renderRows())
	}

	hotKeys := "enter: details │ /: search │ f: payment │ tab: referral │ s: sort │ l: list token │ esc: home"
	if m.searching {
		hotKeys = "enter: apply │ esc: cancel"
	}
	return renderPage("MARKETPLACE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *MarketplaceModel) renderTabs() string {
	all, referral := "All Listings", "Referral Rewards"
	if m.filter.ReferralOnly {
		referral = activeTabStyle.Render(referral)
	} else {
		all = activeTabStyle.Render(all)
	}

	payment := "All"
	if m.filter.Payment != "" {
		payment = string(m.filter.Payment)
	}

	return fmt.Sprintf("%s   %s      %s %s   %s %s",
		all, referral,
		helpStyle.Render("Payment:"), payment,
		helpStyle.Render("Sort:"), m.filter.Sort)
}

func (m *MarketplaceModel) renderRows() string {
	now := m.now()

	var b strings.Builder
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %-28s %-14s %-16s %-9s %s", "Token", "Amount", "Price", "Referral", "Ends in")))
	b.WriteString("\n")

	for i, l := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		referral := "-"
		if l.ReferralActive {
			referral = fmt.Sprintf("%d%%", l.ReferralPercent)
		}

		row := fmt.Sprintf("%-28s %-14s %-16s %-9s %s",
			fitText(l.TokenName+" ("+l.TokenSymbol+")", 28),
			fitText(l.Amount, 14),
			fitText(l.PricePerToken+" "+string(l.PaymentToken), 16),
			referral,
			timeLeft(l.EndTime, now),
		)
		if i == m.idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(cursor)
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *MarketplaceModel) renderDetail(l models.TokenListing) string {
	net := m.state.network

	referral := "No"
	if l.ReferralActive {
		referral = fmt.Sprintf("%d%% of each purchase", l.ReferralPercent)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(l.TokenName + " (" + l.TokenSymbol + ")"))
	b.WriteString("\n\n")
	b.WriteString("Token:       " + l.TokenAddress + "\n")
	b.WriteString("Seller:      " + utils.ShortAddress(l.Seller) + "\n")
	b.WriteString("Amount:      " + l.Amount + "\n")
	b.WriteString("Price:       " + l.PricePerToken + " " + string(l.PaymentToken) + " per token\n")
	b.WriteString("Referral:    " + referral + "\n")
	b.WriteString("Ends in:     " + timeLeft(l.EndTime, m.now()) + " (" + l.EndTime.Local().Format(time.DateTime) + ")\n")
	b.WriteString("Website:     " + valueOrDash(l.Metadata.ProjectWebsite) + "\n")
	b.WriteString("Social:      " + valueOrDash(l.Metadata.SocialMediaLink) + "\n")
	b.WriteString("Telegram:    " + valueOrDash(l.Metadata.TelegramURL) + "\n")
	b.WriteString("Image:       " + valueOrDash(l.Metadata.TokenImageURL) + "\n")
	if l.Metadata.ProjectDescription != "" {
		b.WriteString("\n")
		b.WriteString(l.Metadata.ProjectDescription)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(net.TokenURL(l.TokenAddress)))
	return b.String()
}
