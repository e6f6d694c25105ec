package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidWalletConfigs indicates invalid wallet provider settings
	// (for example, a malformed provider URL or a zero request timeout).
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidNetworkConfigs indicates an incomplete network definition.
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
	// ErrInvalidContractsConfigs indicates a contract address that is not a
	// 20-byte hex address.
	ErrInvalidContractsConfigs = errors.New("invalid contracts configuration")
	// ErrInvalidStorageConfigs indicates invalid local catalog settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
