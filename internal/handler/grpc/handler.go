// Package grpc exposes the stub server's gRPC surface: the standard health
// checking service, reporting whether the post store is reachable.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name clients can query besides the
// overall ("") status.
const ServiceName = "postboard.Posts"

// Pinger is satisfied by the store's database handle.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server and flips its status according to the database
// ping result.
type Handler struct {
	health *health.Server
	db     Pinger

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose services start as SERVING.
func NewHandler(db Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		db:     db,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Check pings the database and updates the health status accordingly.
func (h *Handler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Err(err).Msg("database ping failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.setStatus(status)
	return status
}

// Watch re-checks the database every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING so clients stop routing to it.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// HealthServer exposes the underlying health server.
func (h *Handler) HealthServer() healthpb.HealthServer {
	return h.health
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
