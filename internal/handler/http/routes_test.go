package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/mock"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

type testServer struct {
	router http.Handler
	posts  *mock.MockPostRepository
	users  *mock.MockUserRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	h := NewHandler(
		&store.Storages{PostRepository: posts, UserRepository: users},
		models.NewAppBuildInfo("post-board-stub", "1.2.3", "2026-01-01", "deadbeef"),
		time.Second,
		logger.Nop(),
	)

	return &testServer{router: h.Init(), posts: posts, users: users}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func samplePosts() []models.Post {
	return []models.Post{
		{ID: 1, UserID: 1, Title: "first", Body: "a"},
		{ID: 2, UserID: 1, Title: "second", Body: "b"},
	}
}

// ── Posts ────────────────────────────────────────────────────────────────────

func TestListPosts(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().List(gomock.Any(), store.PostFilter{}).Return(samplePosts(), nil)

	rr := s.do(http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(utils.TraceIDHeader))
	assert.Equal(t, samplePosts(), decodeJSON[[]models.Post](t, rr))
}

func TestListPosts_FilterByUser(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().List(gomock.Any(), store.PostFilter{UserID: 3}).Return([]models.Post{}, nil)

	rr := s.do(http.MethodGet, "/posts?userId=3", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListPosts_InvalidUserFilter(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/posts?userId=abc", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListPosts_StoreError(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(store.ErrExecutingQuery, errors.New("connection refused")))

	rr := s.do(http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeJSON[utils.ErrorResponse](t, rr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Error)
}

func TestListUserPosts(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().List(gomock.Any(), store.PostFilter{UserID: 1}).Return(samplePosts(), nil)

	rr := s.do(http.MethodGet, "/users/1/posts", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeJSON[[]models.Post](t, rr), 2)
}

func TestGetPost(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(s *testServer)
		wantStatus int
	}{
		{
			name:   "found",
			target: "/posts/1",
			setup: func(s *testServer) {
				s.posts.EXPECT().Get(gomock.Any(), int64(1)).Return(samplePosts()[0], nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/posts/404",
			setup: func(s *testServer) {
				s.posts.EXPECT().Get(gomock.Any(), int64(404)).Return(models.Post{}, store.ErrPostNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non numeric id",
			target:     "/posts/abc",
			setup:      func(*testServer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero id",
			target:     "/posts/0",
			setup:      func(*testServer) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			tt.setup(s)

			rr := s.do(http.MethodGet, tt.target, "")
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCreatePost(t *testing.T) {
	s := newTestServer(t)
	draft := models.PostDraft{UserID: 1, Title: "hello", Body: "world"}
	s.posts.EXPECT().Create(gomock.Any(), draft).
		Return(models.Post{ID: 21, UserID: 1, Title: "hello", Body: "world"}, nil)

	rr := s.do(http.MethodPost, "/posts", `{"userId":1,"title":"hello","body":"world"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, int64(21), decodeJSON[models.Post](t, rr).ID)
}

func TestCreatePost_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "malformed json", body: `{"title":`, wantErr: ErrInvalidBody.Error()},
		{name: "empty title", body: `{"userId":1,"title":"  "}`, wantErr: models.ErrEmptyTitle.Error()},
		{name: "missing user", body: `{"title":"t"}`, wantErr: models.ErrInvalidUserID.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rr := s.do(http.MethodPost, "/posts", tt.body)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, decodeJSON[utils.ErrorResponse](t, rr).Error, tt.wantErr)
		})
	}
}

func TestCreatePost_UnknownAuthor(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrUnknownAuthor)

	rr := s.do(http.MethodPost, "/posts", `{"userId":999,"title":"t"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePost(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			s := newTestServer(t)
			s.posts.EXPECT().Update(gomock.Any(), int64(2), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, p models.PostPatch) (models.Post, error) {
					require.NotNil(t, p.Title)
					assert.Nil(t, p.Body)
					assert.Nil(t, p.UserID)
					return models.Post{ID: 2, UserID: 1, Title: *p.Title, Body: "b"}, nil
				})

			rr := s.do(method, "/posts/2", `{"title":"renamed"}`)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "renamed", decodeJSON[models.Post](t, rr).Title)
		})
	}
}

func TestUpdatePost_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
	}{
		{name: "empty patch", target: "/posts/1", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "blank title", target: "/posts/1", body: `{"title":""}`, wantStatus: http.StatusBadRequest},
		{name: "bad json", target: "/posts/1", body: `nope`, wantStatus: http.StatusBadRequest},
		{name: "bad id", target: "/posts/-1", body: `{"title":"x"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rr := s.do(http.MethodPut, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdatePost_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().Update(gomock.Any(), int64(404), gomock.Any()).Return(models.Post{}, store.ErrPostNotFound)

	rr := s.do(http.MethodPut, "/posts/404", `{"body":"x"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeletePost(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	rr := s.do(http.MethodDelete, "/posts/1", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestDeletePost_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.posts.EXPECT().Delete(gomock.Any(), int64(1)).Return(store.ErrPostNotFound)

	rr := s.do(http.MethodDelete, "/posts/1", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── Users ────────────────────────────────────────────────────────────────────

func TestListUsers(t *testing.T) {
	s := newTestServer(t)
	users := []models.User{{ID: 1, Name: "Leanne Graham", Username: "Bret"}}
	s.users.EXPECT().List(gomock.Any()).Return(users, nil)

	rr := s.do(http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, users, decodeJSON[[]models.User](t, rr))
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().Get(gomock.Any(), int64(1)).Return(models.User{ID: 1, Name: "Leanne Graham"}, nil)
	s.users.EXPECT().Get(gomock.Any(), int64(42)).Return(models.User{}, store.ErrUserNotFound)

	rr := s.do(http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Leanne Graham", decodeJSON[models.User](t, rr).Name)

	rr = s.do(http.MethodGet, "/users/42", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ── Misc ─────────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/version", "")

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeJSON[versionResponse](t, rr)
	assert.Equal(t, versionResponse{Name: "post-board-stub", Version: "1.2.3", Date: "2026-01-01", Commit: "deadbeef"}, got)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/comments", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	rr = s.do(http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestTraceIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().List(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]models.User, error) {
			traceID, ok := utils.GetTraceIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "trace-123", traceID)
			return nil, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", rr.Header().Get(utils.TraceIDHeader))
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: ErrInvalidID, want: http.StatusBadRequest},
		{err: models.ErrEmptyPatch, want: http.StatusBadRequest},
		{err: store.ErrPostNotFound, want: http.StatusNotFound},
		{err: store.ErrUserNotFound, want: http.StatusNotFound},
		{err: store.ErrUnknownAuthor, want: http.StatusBadRequest},
		{err: context.DeadlineExceeded, want: http.StatusGatewayTimeout},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_SeveralSentinelsIsStable(t *testing.T) {
	err := errors.Join(context.DeadlineExceeded, fmt.Errorf("get post: %w", store.ErrPostNotFound))

	for range 50 {
		require.Equal(t, http.StatusNotFound, statusFromError(err))
	}
}
