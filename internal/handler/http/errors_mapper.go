package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/internal/validators"
	"github.com/MKhiriev/go-post-board/models"
)

// errorStatuses is matched top to bottom; the first sentinel found in the
// chain decides the status.
var errorStatuses = []struct {
	target error
	status int
}{
	{store.ErrPostNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
	{models.ErrEmptyPatch, http.StatusBadRequest},
	{models.ErrEmptyTitle, http.StatusBadRequest},
	{models.ErrInvalidUserID, http.StatusBadRequest},
	{validators.ErrTitleTooLong, http.StatusBadRequest},
	{validators.ErrBodyTooLong, http.StatusBadRequest},
	{store.ErrUnknownAuthor, http.StatusBadRequest},
	{store.ErrInvalidPost, http.StatusBadRequest},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors are
// not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
