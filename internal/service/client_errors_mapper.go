// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-property-dex/internal/adapter"
)

// mapAdapterError translates a wallet provider error into the session
// manager's error taxonomy. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrProviderUnavailable),
		errors.Is(err, ErrUserRejected),
		errors.Is(err, ErrWrongNetwork),
		errors.Is(err, ErrBalanceRead):
		return err

	case errors.Is(err, adapter.ErrUserRejected):
		return fmt.Errorf("%w: %w", ErrUserRejected, err)

	case errors.Is(err, adapter.ErrProviderUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	return err
}
