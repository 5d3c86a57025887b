package store

import (
	"context"

	"github.com/MKhiriev/go-post-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PostFilter narrows [PostRepository.List]. Zero fields do not filter.
type PostFilter struct {
	UserID int64
}

type PostRepository interface {
	List(ctx context.Context, filter PostFilter) ([]models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Create(ctx context.Context, draft models.PostDraft) (models.Post, error)
	// Update merges the set fields of patch into the stored post and returns
	// the result.
	Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
