package tui

import (
	"github.com/MKhiriev/go-property-dex/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in RootModel.
const (
	pageHome        = "home"
	pageCreateToken = "create_token"
	pageListToken   = "list_token"
	pageMarketplace = "marketplace"
	pageMyTokens    = "my_tokens"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type sessionUpdateMsg models.SessionUpdate

type connectDoneMsg struct {
	err error
}

type disconnectDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type noticeMsg struct {
	text  string
	isErr bool
}

type clearNoticeMsg struct {
	id int
}

type copiedMsg struct {
	label string
	err   error
}

type tokenCreatedMsg struct {
	token models.CreatedToken
	err   error
}

type listingCreatedMsg struct {
	listing models.TokenListing
	err     error
}

type listingsLoadedMsg struct {
	listings []models.TokenListing
	err      error
}

type createdTokensLoadedMsg struct {
	tokens []models.CreatedToken
	err    error
}

// prefillListingMsg opens the list-token form for a freshly created token.
type prefillListingMsg struct {
	token models.CreatedToken
}
