// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ZeroBalance is the balance shown for every asset while no wallet is
// connected.
const ZeroBalance = "0"

// Balances holds human-readable decimal amounts of the three assets tracked
// for the connected account.
type Balances struct {
	// Native is the chain's native coin balance (ETH on Base).
	Native string `json:"native"`

	// GovernanceToken is the PRDX balance.
	GovernanceToken string `json:"governance_token"`

	// StableToken is the USDC balance.
	StableToken string `json:"stable_token"`
}

// DefaultBalances returns the balances of a disconnected session.
func DefaultBalances() Balances {
	return Balances{
		Native:          ZeroBalance,
		GovernanceToken: ZeroBalance,
		StableToken:     ZeroBalance,
	}
}

// Session is the client-held record of the wallet connection.
//
// Address and ChainID are only meaningful while Connected is true; in the
// disconnected state they hold their zero values and every balance is
// [ZeroBalance].
type Session struct {
	Connected bool     `json:"connected"`
	Address   string   `json:"address,omitempty"`
	ChainID   uint64   `json:"chain_id,omitempty"`
	Balances  Balances `json:"balances"`
}

// DefaultSession returns the disconnected session every process starts with.
func DefaultSession() Session {
	return Session{Balances: DefaultBalances()}
}

// UpdateReason tells consumers why the session manager published a
// [SessionUpdate].
type UpdateReason int

const (
	// ReasonConnected is published after a connect attempt committed a session.
	ReasonConnected UpdateReason = iota + 1
	// ReasonDisconnected is published after the session was reset, either on
	// request or because the wallet reported no accounts.
	ReasonDisconnected
	// ReasonBalancesRefreshed is published after fresh balances were stored.
	ReasonBalancesRefreshed
	// ReasonReloaded is published when the wallet switched chains and the
	// session was reset before reconnecting.
	ReasonReloaded
	// ReasonConnectFailed is published when a connect attempt failed. The
	// session is left as it was before the attempt.
	ReasonConnectFailed
	// ReasonRefreshFailed is published when a balance refresh failed and the
	// last known balances were kept.
	ReasonRefreshFailed
)

// String returns a short label used in logs.
func (r UpdateReason) String() string {
	switch r {
	case ReasonConnected:
		return "connected"
	case ReasonDisconnected:
		return "disconnected"
	case ReasonBalancesRefreshed:
		return "balances_refreshed"
	case ReasonReloaded:
		return "reloaded"
	case ReasonConnectFailed:
		return "connect_failed"
	case ReasonRefreshFailed:
		return "refresh_failed"
	default:
		return "unknown"
	}
}

// SessionUpdate is a snapshot of the session together with the reason it was
// published. Err is set for the failure reasons.
type SessionUpdate struct {
	Session Session
	Reason  UpdateReason
	Err     error
}
