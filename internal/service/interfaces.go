// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the post feed: the in-memory, optimistically updated
// list of posts that the terminal UI renders.
package service

import (
	"context"

	"github.com/MKhiriev/go-post-board/internal/stream"
	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/feed_service_mock.go -package=mock

// FeedService owns the local post list, the users panel and the selected
// post. Mutations are applied only after the remote call succeeds; on
// failure the local state is left unchanged and the error is logged and
// returned. The local list is never reconciled with the server on its own.
type FeedService interface {
	// Load fetches all posts, truncates them to the display cap and publishes
	// the result as the new snapshot.
	Load(ctx context.Context) error

	// LoadUsers fetches all users, keeps the first users-cap entries and
	// publishes them.
	LoadUsers(ctx context.Context) error

	// Bootstrap runs Load and LoadUsers concurrently and returns the first
	// error.
	Bootstrap(ctx context.Context) error

	// Create sends draft to the server. On success the returned post is
	// prepended to the snapshot (replacing any entry with the same id), the
	// display cap grows by one and the snapshot is republished.
	Create(ctx context.Context, draft models.PostDraft) (models.Post, error)

	// Update validates patch and sends it to the server. On success the
	// patch is merged into the local entry with that id and the snapshot is
	// republished; if the post is selected its detail is re-fetched.
	Update(ctx context.Context, id int64, patch models.PostPatch) error

	// Delete removes the post on the server, then locally. The selection is
	// cleared if it pointed at the deleted post.
	Delete(ctx context.Context, id int64) error

	// Select marks id as selected and publishes its freshly fetched detail.
	// A response that arrives after a newer Select or ClearSelection is
	// dropped.
	Select(ctx context.Context, id int64) error

	// ClearSelection drops the selection and publishes an empty detail.
	ClearSelection()

	// Posts is the snapshot stream.
	Posts() stream.Source[[]models.Post]
	// Detail is the stream of the selected post; nil means nothing is
	// selected.
	Detail() stream.Source[*models.Post]
	// Users is the users panel stream.
	Users() stream.Source[[]models.User]

	// Snapshot returns a copy of the current post list.
	Snapshot() []models.Post
	// Cap returns the current display cap.
	Cap() int
	// Selected returns the selected post id, if any.
	Selected() (int64, bool)

	// Close completes every stream. The service must not be used afterwards.
	Close()
}
