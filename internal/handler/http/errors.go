// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors produced before the store is called.
var (
	// ErrInvalidID is returned when the {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id in path")

	// ErrInvalidBody is returned when the request body is not valid JSON for
	// the target resource.
	ErrInvalidBody = errors.New("invalid request body")
)
