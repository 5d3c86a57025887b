// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the data access client of the post board: a thin
// REST client for the JSONPlaceholder-shaped posts API.
//
// The primary abstraction is [APIAdapter], which decouples the feed service
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPAPIAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter defines transport-agnostic access to the posts API. Every
// method issues exactly one request: no retries and no caching. The only
// deadline applied is the configured request timeout and whatever ctx
// carries.
type APIAdapter interface {
	// ListPosts fetches all posts in server order (GET /posts).
	ListPosts(ctx context.Context) ([]models.Post, error)

	// GetPost fetches a single post (GET /posts/{id}). Returns [ErrNotFound]
	// (wrapped) if the server has no such post.
	GetPost(ctx context.Context, id int64) (models.Post, error)

	// ListUsers fetches all users in server order (GET /users).
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches a single user (GET /users/{id}).
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreatePost sends draft to POST /posts and returns the stored post with
	// the id assigned by the server.
	CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error)

	// UpdatePost sends the set fields of patch to PUT /posts/{id} and returns
	// the server's view of the post.
	UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)

	// DeletePost removes the post (DELETE /posts/{id}).
	DeletePost(ctx context.Context, id int64) error
}
