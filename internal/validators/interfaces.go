// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the raw values the session layer receives before
// they reach the identity and creation stores.
//
// A [Validator] inspects one value (a registration request, a login request
// or a creation) and may be limited to a subset of its fields with the Field*
// constants. Empty or whitespace-only required fields are reported with the
// ErrEmpty* sentinels.
package validators

import "context"

// Validator validates v, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
