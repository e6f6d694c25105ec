package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/app"
	"github.com/MKhiriev/go-property-dex/internal/service"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MyTokensModel lists the tokens created from the connected wallet.
type MyTokensModel struct {
	ctx    context.Context
	tokens service.TokenService
	state  *walletState

	items   []models.CreatedToken
	idx     int
	loading bool
	loadErr error
}

func NewMyTokensModel(ctx context.Context, tokens service.TokenService, state *walletState) *MyTokensModel {
	return &MyTokensModel{ctx: ctx, tokens: tokens, state: state}
}

func (m *MyTokensModel) Init() tea.Cmd {
	m.loading = true
	ctx, tokens := m.ctx, m.tokens
	return func() tea.Msg {
		items, err := tokens.ListCreated(ctx)
		return createdTokensLoadedMsg{tokens: items, err: err}
	}
}

func (m *MyTokensModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createdTokensLoadedMsg:
		m.loading = false
		m.loadErr = msg.err
		m.items = msg.tokens
		m.idx = 0
		return m, nil

	case sessionUpdateMsg:
		// Another account or a disconnect makes the list stale.
		if msg.Reason == models.ReasonConnected || msg.Reason == models.ReasonDisconnected {
			return m, m.Init()
		}
		return m, nil

	case tea.KeyMsg:
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
		case key.Matches(msg, keys.copy):
			if len(m.items) > 0 {
				return m, copyToClipboard("Token address", m.items[m.idx].Address)
			}
		case key.Matches(msg, keys.listToken):
			if len(m.items) > 0 {
				return m, navigate(pageListToken, prefillListingMsg{token: m.items[m.idx]})
			}
		}
	}
	return m, nil
}

func (m *MyTokensModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading tokens...")
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(humanizeError(m.loadErr, app.MsgLoadListingsFailed)))
	case len(m.items) == 0:
		b.WriteString(helpStyle.Render("You have not created any tokens yet"))
	default:
		for i, t := range m.items {
			cursor := "  "
			line := fmt.Sprintf("%-28s %-16s %s", fitText(t.Name+" ("+t.Symbol+")", 28), fitText(t.TotalSupply, 16), t.CreatedAt.Local().Format(time.DateTime))
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		selected := m.items[m.idx]
		b.WriteString("\n")
		b.WriteString("Address: " + selected.Address + "\n")
		b.WriteString(helpStyle.Render(m.state.network.TokenURL(selected.Address)))
	}

	return renderPage("MY TOKENS", strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ y: copy address │ l: list token │ esc: home")
}
