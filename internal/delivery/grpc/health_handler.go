package grpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported to grpc.health.v1 clients for the catalog.
const ServiceName = "catalog.CatalogService"

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler publishes store reachability through the standard gRPC health service.
type HealthHandler struct {
	server  *health.Server
	store   Pinger
	timeout time.Duration
	log     *logrus.Logger
}

func NewHealthHandler(store Pinger, timeout time.Duration, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		server:  health.NewServer(),
		store:   store,
		timeout: timeout,
		log:     logger,
	}
}

func (h *HealthHandler) Server() healthpb.HealthServer {
	return h.server
}

// Check pings the store once and updates the published status.
func (h *HealthHandler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.store.PingContext(ctx); err != nil {
		h.log.Warnf("gRPC Health: Store ping failed: %v", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
	return status
}

// Watch re-checks the store every interval until ctx is done, then marks the
// service as shutting down.
func (h *HealthHandler) Watch(ctx context.Context, interval time.Duration) {
	h.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			h.log.Info("gRPC Health: Watcher stopped")
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
