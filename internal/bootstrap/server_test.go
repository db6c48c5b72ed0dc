package bootstrap

import (
	"context"
	"net/http"
	"testing"

	"github.com/Domenick1991/showbooking/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestNewServers_HealthEnabled(t *testing.T) {
	cfg := &config.Config{
		HTTP: config.HTTPConfig{Address: "127.0.0.1:0"},
		GRPC: config.GRPCConfig{Address: "127.0.0.1:0"},
	}

	s := newServers(cfg, http.NewServeMux())
	require.NotNil(t, s.grpcServer)
	require.NotNil(t, s.health)

	resp, err := s.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	assert.NoError(t, s.shutdown())
}

func TestNewServers_HealthDisabled(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}

	s := newServers(cfg, http.NewServeMux())
	assert.Nil(t, s.grpcServer)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.Addr)
	assert.NoError(t, s.shutdown())
}
