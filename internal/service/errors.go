package service

import "errors"

var (
	// ErrProviderUnavailable means no wallet provider is configured or it
	// cannot be reached.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrUserRejected means the user declined account authorization or a
	// network switch.
	ErrUserRejected = errors.New("user rejected the request")
	// ErrWrongNetwork means the wallet stayed on a chain other than the
	// required one.
	ErrWrongNetwork = errors.New("wallet is on an unsupported network")
	// ErrBalanceRead means a native balance, decimals or balanceOf read failed.
	ErrBalanceRead = errors.New("failed to read balances")

	ErrNotConnected    = errors.New("wallet is not connected")
	ErrNoAccounts      = errors.New("wallet returned no accounts")
	ErrManagerStopped  = errors.New("session manager is not running")
	ErrAlreadyRunning  = errors.New("session manager already running")
	ErrConnectCanceled = errors.New("connect canceled")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrListingFailed       = errors.New("listing creation failed")
)
