// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the REST adapter, the post feed, background refresh and the
// terminal UI into a single process lifecycle.
package client
