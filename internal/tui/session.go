package tui

import "github.com/MKhiriev/go-property-dex/models"

// walletState is the session snapshot every page renders from. Only
// RootModel writes it, from the session manager's updates.
type walletState struct {
	session    models.Session
	connecting bool
	refreshing bool
	network    models.Network
	contracts  models.Contracts
}

func newWalletState(session models.Session, network models.Network, contracts models.Contracts) *walletState {
	return &walletState{session: session, network: network, contracts: contracts}
}

func (s *walletState) connected() bool {
	return s.session.Connected
}
