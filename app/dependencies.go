package app

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/proctorlab/telemetry-sink/config"
	"github.com/proctorlab/telemetry-sink/services/telemetry"
)

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Events is the in-memory bounded event store; it lives for the whole
	// process and is shared by all request handlers.
	Events *telemetry.Store

	// InstanceID identifies this process run. Event ids are only meaningful
	// within one instance, so the id is exposed on /health for dashboards.
	InstanceID uuid.UUID
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config:     cfg,
		Logger:     logger,
		Events:     telemetry.NewStore(cfg.Telemetry.Capacity),
		InstanceID: uuid.New(),
	}

	logger.Info("event store initialized",
		zap.Int("capacity", deps.Events.Capacity()),
		zap.String("instance_id", deps.InstanceID.String()))

	return deps, nil
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close() error {
	if d.Logger != nil {
		d.Logger.Info("shutting down dependencies")
		_ = d.Logger.Sync()
	}
	return nil
}
