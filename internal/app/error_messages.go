// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Properties DEX client.
//
// All Msg* constants are human-readable strings shown to the user as
// transient notifications or written into log entries to describe the outcome
// of an operation. Keeping them in one place ensures consistent wording
// throughout the terminal UI.
package app

const (
	// MsgInstallWallet is shown when no wallet provider is configured or the
	// provider cannot be reached.
	MsgInstallWallet = "Please install a wallet or start the wallet bridge to use this application"

	// MsgWrongNetwork is shown when the wallet stays on a chain other than
	// the required one.
	MsgWrongNetwork = "Please connect to Base network"

	// MsgConnectRejected is shown when the user declines account access.
	MsgConnectRejected = "Connection request was rejected in the wallet"

	// MsgConnectFailed is shown for any other connect failure.
	MsgConnectFailed = "Failed to connect wallet"

	// MsgWalletConnected is shown after a session was established.
	MsgWalletConnected = "Wallet connected successfully"

	// MsgWalletDisconnected is shown after the session was reset.
	MsgWalletDisconnected = "Wallet disconnected"

	// MsgNetworkChanged is shown when the wallet switched chains and the
	// session is being rebuilt.
	MsgNetworkChanged = "Network changed, reloading wallet session"

	// MsgBalancesRefreshed is shown after a manual balance refresh.
	MsgBalancesRefreshed = "Balances updated"

	// MsgBalancesRefreshFailed is shown when a refresh failed and the last
	// known balances are kept.
	MsgBalancesRefreshFailed = "Could not refresh balances, showing last known values"

	// MsgConnectWalletFirst is shown when an action requires a connected
	// wallet.
	MsgConnectWalletFirst = "Please connect your wallet first"

	// MsgTokenCreated is shown after a token creation completed.
	MsgTokenCreated = "Token created successfully!"

	// MsgTokenCreateFailed is shown when a token creation failed.
	MsgTokenCreateFailed = "Failed to create token. Please try again."

	// MsgTokenListed is shown after a listing was stored.
	MsgTokenListed = "Token listed successfully!"

	// MsgTokenListFailed is shown when a listing failed.
	MsgTokenListFailed = "Failed to list token. Please try again."

	// MsgInvalidDataProvided prefixes form validation failures.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgCopied is shown after a value was copied to the clipboard.
	MsgCopied = "Copied to clipboard"

	// MsgCopyFailed is shown when the clipboard is not available.
	MsgCopyFailed = "Clipboard is not available"

	// MsgNoListings is shown when the marketplace filter matches nothing.
	MsgNoListings = "No listings found"

	// MsgLoadListingsFailed is shown when the catalog query failed.
	MsgLoadListingsFailed = "Failed to load listings"
)
