// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the stub API server.
//
// A single [DB] wraps database/sql and is opened either against PostgreSQL
// (through the pgx stdlib driver) or against a SQLite file, depending on the
// DSN. Queries are built with squirrel so the same repository code emits the
// right placeholder style for both drivers.
package store
