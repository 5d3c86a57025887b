// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
)

type refreshWorker struct {
	feed     Loader
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a worker that re-fetches the post list every
// interval, overwriting optimistic local changes with the server's list. The
// worker is idle until Start is called; a non-positive interval keeps it idle.
func NewRefreshWorker(feed Loader, interval time.Duration, logger *logger.Logger) Worker {
	return &refreshWorker{feed: feed, interval: interval, logger: logger}
}

// Start implements Worker. It stops any previously running loop, then
// launches a goroutine that calls Load on every tick. Load errors are logged
// and do not stop the loop.
func (w *refreshWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.feed.Load(jobCtx); err != nil {
					w.logger.Warn().Err(err).Msg("periodic post refresh failed")
				}
			}
		}
	}()

	w.logger.Info().Dur("interval", w.interval).Msg("post refresh worker started")
}

// Stop implements Worker. It cancels the loop's context and blocks until the
// goroutine has exited. No-op when the worker is not running.
func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
