// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// post board client and the stub API server. It is populated by merging
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the settings of the outbound REST client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Feed holds the display limits of the post list and the users panel.
	Feed Feed `envPrefix:"FEED_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds network address and timeout settings of the stub API
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the persistence settings of the stub API server.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the REST client used to talk to the posts
// API.
type Adapter struct {
	// BaseURL is the root URL of the REST API
	// (e.g. "https://jsonplaceholder.typicode.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Feed holds the list limits applied by the post feed.
type Feed struct {
	// DisplayCap is the initial number of posts kept in the local list.
	// Env: FEED_DISPLAY_CAP
	DisplayCap int `env:"DISPLAY_CAP"`

	// UsersCap is the number of users shown in the users panel.
	// Env: FEED_USERS_CAP
	UsersCap int `env:"USERS_CAP"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the post list is re-fetched from the
	// server. Zero disables the refresh worker.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Server holds network and timeout settings of the stub API server.
type Server struct {
	// HTTPAddress is the TCP address of the REST endpoint, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the storage settings of the stub API server.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form: a "postgres://" or "postgresql://"
	// URL opens PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. For every field the first non-zero value wins, in this
// order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
