// Package server wires and runs the stub API server's transports.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, context-driven cancellation, and graceful shutdown of all enabled
// transports.
package server
