package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
)

// listPosts serves GET /posts, optionally filtered by ?userId=.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	var filter store.PostFilter
	if raw := r.URL.Query().Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			writeError(w, r, models.ErrInvalidUserID)
			return
		}
		filter.UserID = userID
	}

	posts, err := h.posts.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

// listUserPosts serves GET /users/{id}/posts.
func (h *Handler) listUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.posts.List(r.Context(), store.PostFilter{UserID: userID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var draft models.PostDraft
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(r.Context(), draft); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.Create(r.Context(), draft)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", post.ID).Msg("post created")
	_, _ = utils.WriteJSON(w, post, http.StatusCreated)
}

// updatePost serves both PUT and PATCH: only the fields present in the body
// are changed.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.PostPatch
	if err = decodeBody(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.validator.Validate(r.Context(), patch); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.posts.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("post_id", id).Msg("post deleted")
	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusOK)
}
