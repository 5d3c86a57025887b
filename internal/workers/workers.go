package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers groups ws so they can be started and stopped together.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// NewClientWorkers builds the client's background jobs. The refresh worker is
// only added when refreshInterval is positive.
func NewClientWorkers(feed Loader, refreshInterval time.Duration, logger *logger.Logger) *Workers {
	ws := &Workers{}
	if refreshInterval > 0 {
		ws.workers = append(ws.workers, NewRefreshWorker(feed, refreshInterval, logger))
	}
	return ws
}

// Len returns the number of grouped workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
