// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stream provides a small push-based state container.
//
// A [Value] holds the latest published value of type T. Subscribers receive
// that value immediately on subscription and then every subsequent update.
// Delivery is conflating: a subscriber that has not yet consumed the previous
// value only ever observes the newest one, so a slow reader never blocks
// [Value.Publish].
package stream
