// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProviderEventKind enumerates notifications emitted by a wallet provider.
type ProviderEventKind int

const (
	// AccountsChanged carries the new list of authorized accounts. An empty
	// list means the user disconnected the wallet.
	AccountsChanged ProviderEventKind = iota + 1
	// ChainChanged carries the id of the newly selected chain.
	ChainChanged
	// ProviderDisconnected means the provider lost its connection to every
	// chain.
	ProviderDisconnected
)

// ProviderEvent is a single wallet notification.
type ProviderEvent struct {
	Kind     ProviderEventKind
	Accounts []string
	ChainID  uint64
}
