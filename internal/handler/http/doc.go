// Package http implements the REST transport of the stub API server.
//
// It exposes the JSONPlaceholder-shaped /posts and /users resources on top of
// the store repositories. Request tracing and access logging are handled by
// middleware before requests reach the resource handlers.
package http
