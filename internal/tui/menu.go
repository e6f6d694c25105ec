package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-property-dex/internal/app"
	"github.com/MKhiriev/go-property-dex/internal/utils"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title       string
	description string
	page        string
	needsWallet bool
}

var homeMenu = []menuItem{
	{"Create Token", "Tokenize a property as an ERC-20 token", pageCreateToken, true},
	{"List Token", "Put your property tokens on the marketplace", pageListToken, true},
	{"Marketplace", "Browse active property token listings", pageMarketplace, false},
	{"My Tokens", "Tokens created from this wallet", pageMyTokens, true},
}

// HomeModel is the start page: wallet panel, token info and the main menu.
type HomeModel struct {
	state *walletState
	items []menuItem
	idx   int
}

func NewHomeModel(state *walletState) *HomeModel {
	return &HomeModel{state: state, items: homeMenu}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item := m.items[m.idx]
		if item.needsWallet && !m.state.connected() {
			return m, notify(app.MsgConnectWalletFirst, true)
		}
		return m, navigate(item.page, nil)
	case key.Matches(keyMsg, keys.copyGov):
		return m, copyToClipboard("PRDX address", m.state.contracts.GovernanceToken)
	case key.Matches(keyMsg, keys.copyStable):
		return m, copyToClipboard("USDC address", m.state.contracts.StableToken)
	case key.Matches(keyMsg, keys.copyWallet):
		if m.state.connected() {
			return m, copyToClipboard("Wallet address", m.state.session.Address)
		}
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString(renderWelcome(m.state.connected()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderWallet(), " ", m.renderTokenInfo()))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		title := item.title
		if i == m.idx {
			cursor = "> "
			title = selectedStyle.Render(title)
		}
		b.WriteString(cursor)
		b.WriteString(padRight(title, 14))
		b.WriteString(" ")
		b.WriteString(helpStyle.Render(item.description))
		b.WriteString("\n")
	}

	hotKeys := "enter: open │ ↑/↓: navigate │ p/u: copy token address │ v: version"
	if m.state.connected() {
		hotKeys = "enter: open │ ↑/↓: navigate │ r: refresh │ x: disconnect │ a: copy wallet │ p/u: copy token address │ v: version"
	} else {
		hotKeys = "c: connect wallet │ " + hotKeys
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *HomeModel) renderWallet() string {
	s := m.state.session
	net := m.state.network

	var b strings.Builder
	b.WriteString(titleStyle.Render("Wallet"))
	b.WriteString("\n")
	if !s.Connected {
		b.WriteString("Not connected\n")
		b.WriteString(helpStyle.Render("press c to connect"))
		return panelStyle.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("Address  %s\n", utils.ShortAddress(s.Address)))
	b.WriteString(fmt.Sprintf("Network  %s (%d)\n", net.Name, s.ChainID))
	b.WriteString(fmt.Sprintf("%-8s %s\n", net.NativeCurrency.Symbol, s.Balances.Native))
	b.WriteString(fmt.Sprintf("%-8s %s\n", "PRDX", s.Balances.GovernanceToken))
	b.WriteString(fmt.Sprintf("%-8s %s", "USDC", s.Balances.StableToken))
	return panelStyle.Render(b.String())
}

func (m *HomeModel) renderTokenInfo() string {
	c := m.state.contracts
	net := m.state.network

	var b strings.Builder
	b.WriteString(titleStyle.Render("Token Info"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("PRDX  %s\n", utils.ShortAddress(c.GovernanceToken)))
	b.WriteString(helpStyle.Render(net.TokenURL(c.GovernanceToken)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("USDC  %s\n", utils.ShortAddress(c.StableToken)))
	b.WriteString(helpStyle.Render(net.TokenURL(c.StableToken)))
	return panelStyle.Render(b.String())
}
