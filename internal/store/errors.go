// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPostNotFound is returned when no post has the requested id.
	ErrPostNotFound = errors.New("post was not found")

	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUnknownAuthor is returned when a post references a user id that does
	// not exist (foreign key violation).
	ErrUnknownAuthor = errors.New("post author does not exist")

	// ErrInvalidPost is returned when a write violates a NOT NULL or CHECK
	// constraint of the posts table.
	ErrInvalidPost = errors.New("post violates table constraints")
)

// Low-level database operation errors, wrapped together with the driver error.
var (
	// ErrUnsupportedDSN is returned when the DSN does not name a known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
