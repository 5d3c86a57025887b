// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// Post mirrors a post resource of the remote REST API.
type Post struct {
	// ID is assigned by the server on creation and is unique.
	ID int64 `json:"id"`

	// UserID references the author of the post.
	UserID int64 `json:"userId"`

	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostDraft is the payload of a create request: a post without an ID.
type PostDraft struct {
	UserID int64  `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Validate reports whether the draft can be sent to the server.
func (d PostDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if d.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// PostPatch is a typed partial update of a [Post]. Only non-nil fields are
// merged; the ID is never mergeable.
type PostPatch struct {
	UserID *int64  `json:"userId,omitempty"`
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
}

var (
	// ErrEmptyPatch is returned when a patch carries no fields to merge.
	ErrEmptyPatch = errors.New("patch has no fields to update")

	// ErrEmptyTitle is returned when a title is set to a blank string.
	ErrEmptyTitle = errors.New("post title must not be empty")

	// ErrInvalidUserID is returned when a user ID is not positive.
	ErrInvalidUserID = errors.New("post user id must be positive")
)

// IsEmpty reports whether the patch sets no fields at all.
func (p PostPatch) IsEmpty() bool {
	return p.UserID == nil && p.Title == nil && p.Body == nil
}

// Validate checks which fields are mergeable and whether their values are
// acceptable.
func (p PostPatch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.UserID != nil && *p.UserID <= 0 {
		return ErrInvalidUserID
	}
	return nil
}

// Apply returns a copy of post with every set field of the patch merged in.
func (p PostPatch) Apply(post Post) Post {
	if p.UserID != nil {
		post.UserID = *p.UserID
	}
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Body != nil {
		post.Body = *p.Body
	}
	return post
}

// NewDefaultDraft returns the draft used by the quick "new post" action.
func NewDefaultDraft() PostDraft {
	return PostDraft{
		UserID: 1,
		Title:  "New Post from Go DI Example",
		Body:   "This post was created using dependency injection in Go!",
	}
}
