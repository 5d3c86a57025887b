// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the stub server's input rules for post payloads.
//
// A Validator checks a value as a whole or, when field names are passed,
// only the named fields. Handlers call it after decoding a request body and
// before touching the store.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
