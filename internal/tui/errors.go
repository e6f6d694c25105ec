// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-property-dex/internal/app"
	"github.com/MKhiriev/go-property-dex/internal/service"
)

// humanizeError maps service errors to the notification text shown to the
// user. Errors without a dedicated message fall back to fallback.
func humanizeError(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrProviderUnavailable):
		return app.MsgInstallWallet
	case errors.Is(err, service.ErrWrongNetwork):
		return app.MsgWrongNetwork
	case errors.Is(err, service.ErrUserRejected):
		return app.MsgConnectRejected
	case errors.Is(err, service.ErrNotConnected):
		return app.MsgConnectWalletFirst
	case errors.Is(err, service.ErrInvalidDataProvided):
		return err.Error()
	}

	if fallback != "" {
		return fallback
	}
	return err.Error()
}
