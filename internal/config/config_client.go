package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the REST API root used by the client.
	BaseURL string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientFeed contains the list limits of the post feed.
type ClientFeed struct {
	// DisplayCap is the initial display cap of the post list.
	DisplayCap int
	// UsersCap is the number of users kept for the users panel.
	UsersCap int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the post list is re-fetched.
	// Zero disables the refresh worker.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the REST API address and timeout.
	Adapter ClientAdapter
	// Feed contains the post list and users panel limits.
	Feed ClientFeed
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Feed: ClientFeed{
			DisplayCap: cfg.Feed.DisplayCap,
			UsersCap:   cfg.Feed.UsersCap,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
