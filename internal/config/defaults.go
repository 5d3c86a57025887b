package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultBaseURL        = "https://jsonplaceholder.typicode.com"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDisplayCap     = 5
	DefaultUsersCap       = 3
	DefaultServerAddress  = "localhost:8080"
	DefaultDSN            = "posts.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Feed: Feed{
			DisplayCap: DefaultDisplayCap,
			UsersCap:   DefaultUsersCap,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
	}
}
