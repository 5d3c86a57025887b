// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/stream"
	"github.com/MKhiriev/go-post-board/models"
	"golang.org/x/sync/errgroup"
)

type feedService struct {
	adapter adapter.APIAdapter
	logger  *logger.Logger

	usersCap int

	// mu guards every field below and makes each read-modify-publish of the
	// snapshot atomic with respect to other completions.
	mu         sync.Mutex
	posts      []models.Post
	displayCap int
	selected   *int64
	selectSeq  uint64

	postsStream  *stream.Value[[]models.Post]
	detailStream *stream.Value[*models.Post]
	usersStream  *stream.Value[[]models.User]
}

// NewFeedService creates a FeedService backed by api. The snapshot starts
// empty and is published immediately, so subscribers always get a value.
func NewFeedService(api adapter.APIAdapter, feedCfg config.ClientFeed, logger *logger.Logger) FeedService {
	displayCap := feedCfg.DisplayCap
	if displayCap <= 0 {
		displayCap = config.DefaultDisplayCap
	}
	usersCap := feedCfg.UsersCap
	if usersCap < 0 {
		usersCap = 0
	}

	return &feedService{
		adapter:      api,
		logger:       logger,
		usersCap:     usersCap,
		posts:        []models.Post{},
		displayCap:   displayCap,
		postsStream:  stream.NewValueWith([]models.Post{}),
		detailStream: stream.NewValue[*models.Post](),
		usersStream:  stream.NewValueWith([]models.User{}),
	}
}

func (s *feedService) Load(ctx context.Context) error {
	posts, err := s.adapter.ListPosts(ctx)
	if err != nil {
		s.logger.Err(err).Msg("failed to load posts")
		return fmt.Errorf("load posts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = truncate(uniqueByID(posts), s.displayCap)
	s.publishLocked()

	s.logger.Debug().Int("count", len(s.posts)).Int("cap", s.displayCap).Msg("posts loaded")
	return nil
}

func (s *feedService) LoadUsers(ctx context.Context) error {
	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		s.logger.Err(err).Msg("failed to load users")
		return fmt.Errorf("load users: %w", err)
	}

	users = truncate(users, s.usersCap)
	s.usersStream.Publish(users)

	s.logger.Debug().Int("count", len(users)).Msg("users loaded")
	return nil
}

func (s *feedService) Bootstrap(ctx context.Context) error {
	// the loads share ctx but not a cancel: a failed users fetch must not
	// abort the posts fetch
	var g errgroup.Group
	g.Go(func() error { return s.Load(ctx) })
	g.Go(func() error { return s.LoadUsers(ctx) })

	return g.Wait()
}

func (s *feedService) Create(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	if err := draft.Validate(); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDraft, err)
	}

	post, err := s.adapter.CreatePost(ctx, draft)
	if err != nil {
		s.logger.Err(err).Str("title", draft.Title).Msg("failed to create post")
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Post, 0, len(s.posts)+1)
	next = append(next, post)
	for _, p := range s.posts {
		if p.ID != post.ID {
			next = append(next, p)
		}
	}

	s.displayCap++
	s.posts = truncate(next, s.displayCap)
	s.publishLocked()

	s.logger.Info().Int64("post_id", post.ID).Int("cap", s.displayCap).Msg("post created")
	return post, nil
}

func (s *feedService) Update(ctx context.Context, id int64, patch models.PostPatch) error {
	if id <= 0 {
		return ErrInvalidPostID
	}
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	if _, err := s.adapter.UpdatePost(ctx, id, patch); err != nil {
		s.logger.Err(err).Int64("post_id", id).Msg("failed to update post")
		return fmt.Errorf("update post %d: %w", id, err)
	}

	s.mu.Lock()
	idx := slices.IndexFunc(s.posts, func(p models.Post) bool { return p.ID == id })
	if idx >= 0 {
		next := slices.Clone(s.posts)
		next[idx] = patch.Apply(next[idx])
		s.posts = next
		s.publishLocked()
	}
	isSelected := s.selected != nil && *s.selected == id
	s.mu.Unlock()

	s.logger.Info().Int64("post_id", id).Bool("in_snapshot", idx >= 0).Msg("post updated")

	if isSelected {
		if err := s.Select(ctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("post_id", id).Msg("failed to refresh selected post after update")
		}
	}

	return nil
}

func (s *feedService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPostID
	}

	if err := s.adapter.DeletePost(ctx, id); err != nil {
		s.logger.Err(err).Int64("post_id", id).Msg("failed to delete post")
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = slices.DeleteFunc(slices.Clone(s.posts), func(p models.Post) bool { return p.ID == id })
	s.publishLocked()

	if s.selected != nil && *s.selected == id {
		s.clearSelectionLocked()
	}

	s.logger.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}

func (s *feedService) Select(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidPostID
	}

	s.mu.Lock()
	s.selectSeq++
	token := s.selectSeq
	s.selected = &id
	s.mu.Unlock()

	post, err := s.adapter.GetPost(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.selectSeq {
		s.logger.Debug().Int64("post_id", id).Msg("dropping superseded post detail")
		return nil
	}
	if err != nil {
		s.logger.Err(err).Int64("post_id", id).Msg("failed to fetch post detail")
		return fmt.Errorf("select post %d: %w", id, err)
	}

	s.detailStream.Publish(&post)
	return nil
}

func (s *feedService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearSelectionLocked()
}

func (s *feedService) Posts() stream.Source[[]models.Post] {
	return s.postsStream
}

func (s *feedService) Detail() stream.Source[*models.Post] {
	return s.detailStream
}

func (s *feedService) Users() stream.Source[[]models.User] {
	return s.usersStream
}

func (s *feedService) Snapshot() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.posts)
}

func (s *feedService) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.displayCap
}

func (s *feedService) Selected() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

func (s *feedService) Close() {
	s.postsStream.Close()
	s.detailStream.Close()
	s.usersStream.Close()
}

// publishLocked pushes a copy of the snapshot so subscribers never share the
// backing array with later mutations. Callers hold s.mu.
func (s *feedService) publishLocked() {
	s.postsStream.Publish(slices.Clone(s.posts))
}

// clearSelectionLocked also invalidates any in-flight Select. Callers hold
// s.mu.
func (s *feedService) clearSelectionLocked() {
	s.selected = nil
	s.selectSeq++
	s.detailStream.Publish(nil)
}

// truncate returns a fresh, never nil, copy of at most limit leading items.
// uniqueByID keeps the first occurrence of every post id.
func uniqueByID(posts []models.Post) []models.Post {
	seen := make(map[int64]struct{}, len(posts))
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func truncate[T any](items []T, limit int) []T {
	out := make([]T, min(len(items), max(limit, 0)))
	copy(out, items)
	return out
}
