package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/internal/tui"
	"github.com/MKhiriev/go-post-board/internal/workers"
	"github.com/MKhiriev/go-post-board/models"
)

// UI is the presentation layer driven by the App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	feed    service.FeedService
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp wires the REST adapter, the feed, the background workers and the
// terminal UI from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	api, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create api adapter: %w", err)
	}

	feed := service.NewFeedService(api, cfg.Feed, log)
	ws := workers.NewClientWorkers(feed, cfg.Workers.RefreshInterval, log)

	return newApp(feed, tui.New(feed, buildInfo, log), ws, log), nil
}

func newApp(feed service.FeedService, ui UI, ws *workers.Workers, log *logger.Logger) *App {
	return &App{feed: feed, ui: ui, workers: ws, logger: log}
}

// Run starts the background workers and blocks in the UI until the user quits
// or ctx is cancelled. The feed is closed on return.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.feed.Close()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Int("workers", a.workers.Len()).Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
