package server

import "context"

// Server defines the lifecycle contract of the stub API server.
type Server interface {
	// Run serves requests until ctx is cancelled or a transport fails, then
	// shuts every transport down gracefully.
	Run(ctx context.Context) error
}
