// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the create-token and list-token forms, and
// stored listings, against the marketplace rules.
//
// Services run the full rule set before doing any work. The terminal forms
// run single rules per field by passing the field name, so the user sees
// the same message the service would return.
package validators

import "context"

// Validator validates value. When fields are given only those rules run;
// an unknown field name yields [ErrUnknownField] and an unsupported value
// type yields [ErrUnsupportedType].
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
