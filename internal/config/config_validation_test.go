package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "https://jsonplaceholder.typicode.com", RequestTimeout: time.Second},
		Feed:    ClientFeed{DisplayCap: 5, UsersCap: 3},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"host without scheme", func(c *ClientConfig) { c.Adapter.BaseURL = "localhost:8080" }, nil},
		{"empty base url", func(c *ClientConfig) { c.Adapter.BaseURL = "" }, ErrInvalidAdapterConfigs},
		{"no host", func(c *ClientConfig) { c.Adapter.BaseURL = "http://" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero display cap", func(c *ClientConfig) { c.Feed.DisplayCap = 0 }, ErrInvalidFeedConfigs},
		{"negative users cap", func(c *ClientConfig) { c.Feed.UsersCap = -1 }, ErrInvalidFeedConfigs},
		{"negative refresh", func(c *ClientConfig) { c.Workers.RefreshInterval = -time.Second }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStubConfig_Validate(t *testing.T) {
	valid := StubConfig{
		Server: StubServer{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		DB:     DB{DSN: "stub.db"},
	}
	assert.NoError(t, valid.validate())

	noAddr := valid
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidServerConfigs)

	noTimeout := valid
	noTimeout.Server.RequestTimeout = 0
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidServerConfigs)

	noDSN := valid
	noDSN.DB.DSN = "  "
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)
}
