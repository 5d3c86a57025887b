package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Post("/", h.createPost)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getPost)
			r.Put("/", h.updatePost)
			r.Patch("/", h.updatePost)
			r.Delete("/", h.deletePost)
		})
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
		r.Get("/{id}/posts", h.listUserPosts)
	})

	router.Get("/version", h.getServerVersion)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return router
}
