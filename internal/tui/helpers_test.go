package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-property-dex/internal/mock"
	"github.com/MKhiriev/go-property-dex/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

const (
	testAccount = "0x1234567890abcdef1234567890abcdef12345678"
	testToken   = "0x3333333333333333333333333333333333333333"
)

var (
	testNetwork = models.Network{
		ChainID:        8453,
		Name:           "Base",
		NativeCurrency: models.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
		ExplorerURL:    "https://basescan.org",
	}
	testContracts = models.Contracts{
		GovernanceToken: "0x61Dd3B0E7E5A6A8A9c9B4E5c7A4e3F1D2C1BeD19",
		StableToken:     "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
	}
)

func connectedSession() models.Session {
	return models.Session{
		Connected: true,
		Address:   testAccount,
		ChainID:   testNetwork.ChainID,
		Balances:  models.Balances{Native: "1.5", GovernanceToken: "2.0", StableToken: "3.0"},
	}
}

type testServices struct {
	wallet   *mock.MockWalletService
	tokens   *mock.MockTokenService
	listings *mock.MockListingService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	ctrl := gomock.NewController(t)
	return testServices{
		wallet:   mock.NewMockWalletService(ctrl),
		tokens:   mock.NewMockTokenService(ctrl),
		listings: mock.NewMockListingService(ctrl),
	}
}

func newTestRoot(t *testing.T, session models.Session) (RootModel, testServices) {
	t.Helper()
	svcs := newTestServices(t)
	ctx := context.Background()
	state := newWalletState(session, testNetwork, testContracts)

	pages := map[string]tea.Model{
		pageHome:        NewHomeModel(state),
		pageCreateToken: NewCreateTokenModel(ctx, svcs.tokens, state),
		pageListToken:   NewListTokenModel(ctx, svcs.listings, state),
		pageMarketplace: NewMarketplaceModel(ctx, svcs.listings, state),
		pageMyTokens:    NewMyTokensModel(ctx, svcs.tokens, state),
	}
	root := NewRootModel(ctx, svcs.wallet, state, pages, pageHome, models.NewAppBuildInfo("v1.2.3", "2026-03-01", "abc123"))
	return root, svcs
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return root, cmd
}
