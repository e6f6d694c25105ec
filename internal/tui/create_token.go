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

const defaultTokenDecimals = "18"

type createTokenStep int

const (
	createStepForm createTokenStep = iota
	createStepSubmitting
	createStepResult
)

// CreateTokenModel collects the token parameters, submits them to the token
// service and shows the created token.
type CreateTokenModel struct {
	ctx       context.Context
	tokens    service.TokenService
	state     *walletState
	validator validators.Validator

	form *huh.Form
	step createTokenStep

	name     string
	symbol   string
	supply   string
	decimals string

	created models.CreatedToken
}

func NewCreateTokenModel(ctx context.Context, tokens service.TokenService, state *walletState) *CreateTokenModel {
	return &CreateTokenModel{
		ctx:       ctx,
		tokens:    tokens,
		state:     state,
		validator: validators.NewTokenValidator(),
	}
}

func (m *CreateTokenModel) Init() tea.Cmd {
	m.reset()
	return m.form.Init()
}

func (m *CreateTokenModel) capturesInput() bool {
	return m.step == createStepForm
}

func (m *CreateTokenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(tokenCreatedMsg); ok {
		return m.handleResult(result)
	}

	switch m.step {
	case createStepForm:
		return m.updateForm(msg)
	case createStepResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m *CreateTokenModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.step = createStepSubmitting
			return m, m.submit(m.tokenData())
		}
		if m.form.State == huh.StateAborted {
			return m, navigate(pageHome, nil)
		}
	}
	return m, cmd
}

func (m *CreateTokenModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, copyToClipboard("Token address", m.created.Address)
	case key.Matches(keyMsg, keys.another):
		return m, m.Init()
	case key.Matches(keyMsg, keys.listToken):
		return m, navigate(pageListToken, prefillListingMsg{token: m.created})
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageHome, nil)
	}
	return m, nil
}

func (m *CreateTokenModel) handleResult(msg tokenCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.step = createStepForm
		m.rebuildForm()
		return m, tea.Batch(m.form.Init(), notify(humanizeError(msg.err, app.MsgTokenCreateFailed), true))
	}

	m.created = msg.token
	m.step = createStepResult
	return m, notify(app.MsgTokenCreated, false)
}

func (m *CreateTokenModel) submit(data models.TokenData) tea.Cmd {
	ctx, tokens := m.ctx, m.tokens
	return func() tea.Msg {
		token, err := tokens.CreateToken(ctx, data)
		return tokenCreatedMsg{token: token, err: err}
	}
}

func (m *CreateTokenModel) tokenData() models.TokenData {
	decimals, _ := strconv.ParseUint(strings.TrimSpace(m.decimals), 10, 8)
	return models.TokenData{
		Name:        strings.TrimSpace(m.name),
		Symbol:      strings.TrimSpace(m.symbol),
		TotalSupply: strings.TrimSpace(m.supply),
		Decimals:    uint8(decimals),
	}
}

// reset clears the entered values and opens an empty form.
func (m *CreateTokenModel) reset() {
	m.name, m.symbol, m.supply = "", "", ""
	m.decimals = defaultTokenDecimals
	m.created = models.CreatedToken{}
	m.step = createStepForm
	m.rebuildForm()
}

// rebuildForm opens a new form bound to the current values.
func (m *CreateTokenModel) rebuildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Token Name").
				Description("e.g. Beach Villa Token").
				Value(&m.name).
				Validate(m.validateField(validators.FieldTokenName, func(d *models.TokenData, v string) { d.Name = v })),

			huh.NewInput().
				Title("Token Symbol").
				Description("Up to 10 characters, e.g. BVT").
				Value(&m.symbol).
				Validate(m.validateField(validators.FieldTokenSymbol, func(d *models.TokenData, v string) { d.Symbol = v })),

			huh.NewInput().
				Title("Total Supply").
				Description("Number of tokens to mint").
				Placeholder("1000000").
				Value(&m.supply).
				Validate(m.validateField(validators.FieldTotalSupply, func(d *models.TokenData, v string) {
					d.TotalSupply = v
					d.Decimals = m.tokenData().Decimals
				})),

			huh.NewInput().
				Title("Decimals").
				Description("0 to 18").
				Value(&m.decimals).
				Validate(m.validateDecimals),
		),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(false)
}

func (m *CreateTokenModel) validateField(field string, set func(d *models.TokenData, v string)) func(string) error {
	return func(v string) error {
		var data models.TokenData
		set(&data, strings.TrimSpace(v))
		return m.validator.Validate(m.ctx, data, field)
	}
}

func (m *CreateTokenModel) validateDecimals(v string) error {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 8)
	if err != nil {
		return validators.ErrInvalidDecimals
	}
	return m.validator.Validate(m.ctx, models.TokenData{Decimals: uint8(n)}, validators.FieldDecimals)
}

func (m *CreateTokenModel) View() string {
	switch m.step {
	case createStepSubmitting:
		return renderPage("CREATE TOKEN", "Creating token "+m.tokenData().Symbol+"...", "")
	case createStepResult:
		return renderPage("TOKEN CREATED", m.renderResult(), "y: copy address │ l: list token │ n: create another │ esc: home")
	}

	if m.form == nil {
		return renderPage("CREATE TOKEN", "", "esc: back")
	}
	return renderPage("CREATE TOKEN", m.form.View(), "enter: next │ shift+tab: previous │ esc: back")
}

func (m *CreateTokenModel) renderResult() string {
	t := m.created
	net := m.state.network

	var b strings.Builder
	b.WriteString(successStyle.Render(app.MsgTokenCreated))
	b.WriteString("\n\n")
	b.WriteString("Name:          " + t.Name + " (" + t.Symbol + ")\n")
	b.WriteString("Total supply:  " + t.TotalSupply + "\n")
	b.WriteString("Decimals:      " + strconv.Itoa(int(t.Decimals)) + "\n")
	b.WriteString("Token address: " + accentStyle.Render(t.Address) + "\n")
	b.WriteString("Transaction:   " + t.TxHash + "\n")
	b.WriteString(helpStyle.Render(net.TxURL(t.TxHash)))
	return b.String()
}
