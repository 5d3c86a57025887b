package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-resty/resty/v2"
)

const (
	postsPath = "/posts"
	usersPath = "/users"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates adapterCfg.BaseURL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error wrapping [ErrInvalidBaseURL] if the base URL is empty or
// cannot be parsed.
func NewHTTPAPIAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpAPIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListPosts implements [APIAdapter]. GET /posts.
func (h *httpAPIAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := h.get(ctx, "list posts", postsPath, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost implements [APIAdapter]. GET /posts/{id}.
func (h *httpAPIAdapter) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post
	if err := h.get(ctx, "get post", postPath(id), &post); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// ListUsers implements [APIAdapter]. GET /users.
func (h *httpAPIAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.get(ctx, "list users", usersPath, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser implements [APIAdapter]. GET /users/{id}.
func (h *httpAPIAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	if err := h.get(ctx, "get user", usersPath+"/"+strconv.FormatInt(id, 10), &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CreatePost implements [APIAdapter]. It POSTs draft to /posts and decodes
// the created post, including the server-assigned id.
func (h *httpAPIAdapter) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(draft).
		Post(postsPath)
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = decode(resp, &post); err != nil {
		return models.Post{}, fmt.Errorf("decode create post response: %w", err)
	}

	h.logger.Debug().Int64("post_id", post.ID).Msg("post created")
	return post, nil
}

// UpdatePost implements [APIAdapter]. It PUTs the set fields of patch to
// /posts/{id}; the server merges them into the stored post.
func (h *httpAPIAdapter) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(patch).
		Put(postPath(id))
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var post models.Post
	if err = decode(resp, &post); err != nil {
		return models.Post{}, fmt.Errorf("decode update post response: %w", err)
	}

	h.logger.Debug().Int64("post_id", id).Msg("post updated")
	return post, nil
}

// DeletePost implements [APIAdapter]. DELETE /posts/{id}.
func (h *httpAPIAdapter) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(postPath(id))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().Int64("post_id", id).Msg("post deleted")
	return nil
}

func (h *httpAPIAdapter) get(ctx context.Context, op, path string, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = decode(resp, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	return nil
}

func decode(resp *resty.Response, out any) error {
	return json.Unmarshal(resp.Body(), out)
}

func postPath(id int64) string {
	return postsPath + "/" + strconv.FormatInt(id, 10)
}
