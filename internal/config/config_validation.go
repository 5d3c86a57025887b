// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the invariants shared by every binary. Limits that only one
// binary cares about are checked by its own view.
func (cfg *StructuredConfig) validate() error {
	if cfg.Feed.DisplayCap < 0 || cfg.Feed.UsersCap < 0 {
		return ErrInvalidFeedConfigs
	}
	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isAbsoluteURL(cfg.Adapter.BaseURL) || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Feed.DisplayCap <= 0 || cfg.Feed.UsersCap < 0 {
		return ErrInvalidFeedConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if strings.TrimSpace(cfg.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	return err == nil && u.Host != ""
}
