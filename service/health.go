package service

import (
	"context"
	"time"

	"mysessions/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// DefaultHealthSyncInterval is how often the gRPC health status follows the orchestrator.
const DefaultHealthSyncInterval = 5 * time.Second

// HealthServer exposes the orchestrator health over the standard gRPC health protocol.
type HealthServer struct {
	server *health.Server
	status func() string
	logger log.Logger
}

// NewHealthServer creates a health server reporting status. Panics on nil status or logger.
func NewHealthServer(status func() string, logger log.Logger) *HealthServer {
	h := &HealthServer{
		server: health.NewServer(),
		status: helpers.NilPanic(status, "service.health.go: status is required"),
		logger: log.With(helpers.NilPanic(logger, "service.health.go: logger is required"), "component", "grpc_health"),
	}
	h.Sync()
	return h
}

// Register adds the health and reflection services to s.
func (h *HealthServer) Register(s *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(s, h.server)
	reflection.Register(s)
}

// Sync copies the current orchestrator status into the gRPC health status.
func (h *HealthServer) Sync() {
	serving := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if h.status() == HealthUp {
		serving = grpc_health_v1.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus("", serving)
}

// Run syncs the status every interval until ctx is done, then marks the service as not
// serving for good.
func (h *HealthServer) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultHealthSyncInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			level.Info(h.logger).Log("msg", "Health status set to NOT_SERVING")
			return
		case <-ticker.C:
			h.Sync()
		}
	}
}
