// Package tui is the terminal front end of the post board: a single
// bubbletea program that renders the feed streams and turns key presses
// into FeedService calls.
package tui

import (
	"context"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/service"
	"github.com/MKhiriev/go-post-board/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	feed      service.FeedService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(feed service.FeedService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{feed: feed, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	postsCh, cancelPosts := t.feed.Posts().Subscribe()
	defer cancelPosts()
	detailCh, cancelDetail := t.feed.Detail().Subscribe()
	defer cancelDetail()
	usersCh, cancelUsers := t.feed.Users().Subscribe()
	defer cancelUsers()

	model := newMainLoopModel(ctx, t.feed, streams{
		posts:  postsCh,
		detail: detailCh,
		users:  usersCh,
	}, t.buildInfo, clipboard.WriteAll)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui program stopped with error")
		return err
	}

	t.logger.Info().Msg("tui closed by user")
	return nil
}
