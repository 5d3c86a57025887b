package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/utils"
)

type versionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, versionResponse{
		Name:    h.buildInfo.AppName(),
		Version: h.buildInfo.BuildVersion(),
		Date:    h.buildInfo.BuildDate(),
		Commit:  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}
