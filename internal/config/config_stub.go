package config

import (
	"fmt"
	"time"
)

// StubServer holds the listen addresses of the stub API server.
type StubServer struct {
	// HTTPAddress is the "host:port" of the REST endpoint.
	HTTPAddress string
	// GRPCAddress is the "host:port" of the gRPC health endpoint; empty
	// disables it.
	GRPCAddress string
	// RequestTimeout bounds the handling of one inbound request.
	RequestTimeout time.Duration
}

// StubConfig is the configuration view of the stub API server.
type StubConfig struct {
	Server StubServer
	DB     DB
}

// GetStubConfig builds and validates the stub server config view from the
// merged structured configuration.
func GetStubConfig(args []string) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newStubConfig(cfg)
}

func newStubConfig(cfg *StructuredConfig) (*StubConfig, error) {
	stubCfg := &StubConfig{
		Server: StubServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			GRPCAddress:    cfg.Server.GRPCAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		DB: cfg.Storage.DB,
	}

	return stubCfg, stubCfg.validate()
}
