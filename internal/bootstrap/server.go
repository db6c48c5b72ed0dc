package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/showbooking/config"
	"github.com/Domenick1991/showbooking/internal/logger"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const (
	shutdownTimeout = 5 * time.Second
	// ServiceName is reported by the gRPC health service.
	ServiceName = "showbooking.v1.Booking"
)

type Servers struct {
	httpServer *http.Server
	grpcServer *grpc.Server
	health     *health.Server
}

// Run serves HTTP and, when configured, the gRPC health service. It blocks
// until ctx is cancelled or a server fails.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, log logger.Logger) error {
	s := newServers(cfg, handler)

	var lis net.Listener
	if s.grpcServer != nil {
		var err error
		if lis, err = net.Listen("tcp", cfg.GRPC.Address); err != nil {
			return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "address", cfg.HTTP.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	if lis != nil {
		g.Go(func() error {
			log.Info("grpc health server listening", "address", cfg.GRPC.Address)
			return s.grpcServer.Serve(lis)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers")
		return s.shutdown()
	})

	return g.Wait()
}

func newServers(cfg *config.Config, handler http.Handler) *Servers {
	s := &Servers{
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	if cfg.GRPC.Address != "" {
		s.grpcServer = grpc.NewServer()
		s.health = health.NewServer()
		s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(s.grpcServer, s.health)
		reflection.Register(s.grpcServer)
	}
	return s
}

func (s *Servers) shutdown() error {
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
