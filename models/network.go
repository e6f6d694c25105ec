// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NativeCurrency describes the coin used to pay gas on a network.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Network is the definition of the chain the application requires. It is
// also what gets registered in the wallet when the wallet does not know the
// chain yet.
type Network struct {
	ChainID        uint64
	Name           string
	NativeCurrency NativeCurrency
	RPCURL         string
	ExplorerURL    string
}

// TxURL returns the explorer page of a transaction.
func (n Network) TxURL(hash string) string {
	return n.ExplorerURL + "/tx/" + hash
}

// TokenURL returns the explorer page of a token contract.
func (n Network) TokenURL(address string) string {
	return n.ExplorerURL + "/token/" + address
}

// AddressURL returns the explorer page of an account.
func (n Network) AddressURL(address string) string {
	return n.ExplorerURL + "/address/" + address
}

// Contracts lists the fixed contract addresses the client talks to.
type Contracts struct {
	// GovernanceToken is the PRDX ERC-20 contract.
	GovernanceToken string
	// StableToken is the USDC ERC-20 contract.
	StableToken string
	// TokenCreator is the factory that deploys property tokens.
	TokenCreator string
	// FeeRecipient receives marketplace fees.
	FeeRecipient string
	// Marketplace is the escrow contract. It is the zero address until the
	// contract is deployed.
	Marketplace string
}
