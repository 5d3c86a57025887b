package server

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-board/internal/config"
	"github.com/MKhiriev/go-post-board/internal/handler"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"golang.org/x/sync/errgroup"
)

// healthCheckInterval is how often the gRPC health status re-pings the
// database.
const healthCheckInterval = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds a listener for every transport that has a handler.
func NewServer(handlers *handler.Handlers, cfg config.StubServer, logger *logger.Logger) (Server, error) {
	s, err := newServer(handlers, cfg, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newServer(handlers *handler.Handlers, cfg config.StubServer, logger *logger.Logger) (*server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = httpSrv
	}
	if handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.closeListeners()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		g.Go(s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		g.Go(s.gRPCServer.RunServer)
		g.Go(func() error {
			s.gRPCServer.handler.Watch(ctx, healthCheckInterval)
			return nil
		})
	}

	// stop every transport once ctx is done or one of them failed
	g.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) closeListeners() {
	if s.httpServer != nil {
		s.httpServer.listener.Close()
	}
}
