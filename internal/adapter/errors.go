package adapter

import (
	"errors"
	"fmt"
)

// EIP-1193 provider error codes.
const (
	CodeUserRejected        = 4001
	CodeUnauthorized        = 4100
	CodeUnsupportedMethod   = 4200
	CodeDisconnected        = 4900
	CodeChainDisconnected   = 4901
	CodeUnrecognizedChainID = 4902
)

var (
	// ErrProviderUnavailable means the wallet provider could not be reached
	// or is not configured.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrUserRejected means the user declined a wallet prompt.
	ErrUserRejected = errors.New("user rejected the request")
	// ErrChainNotAdded means the wallet does not know the requested chain.
	ErrChainNotAdded = errors.New("chain not added to wallet")
	// ErrUnsupportedMethod means the provider does not implement a method.
	ErrUnsupportedMethod = errors.New("method not supported by provider")
	// ErrInvalidResponse means the provider answered with data that could not
	// be decoded.
	ErrInvalidResponse = errors.New("invalid provider response")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// ProviderError is a JSON-RPC error object returned by the wallet provider.
type ProviderError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// Is matches the provider codes with a meaning of their own against the
// package sentinels.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrUserRejected:
		return e.Code == CodeUserRejected
	case ErrChainNotAdded:
		return e.Code == CodeUnrecognizedChainID
	case ErrUnsupportedMethod:
		return e.Code == CodeUnsupportedMethod
	case ErrProviderUnavailable:
		return e.Code == CodeDisconnected || e.Code == CodeChainDisconnected
	}
	return false
}
