package http

import (
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/store"
	"github.com/MKhiriev/go-post-board/internal/validators"
	"github.com/MKhiriev/go-post-board/models"
)

type Handler struct {
	posts store.PostRepository
	users store.UserRepository

	validator validators.Validator

	buildInfo      models.AppBuildInfo
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(storages *store.Storages, buildInfo models.AppBuildInfo, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		posts:          storages.PostRepository,
		users:          storages.UserRepository,
		validator:      validators.NewPostValidator(),
		buildInfo:      buildInfo,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
