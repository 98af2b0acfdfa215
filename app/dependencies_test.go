package app

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/proctorlab/telemetry-sink/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Telemetry:     config.TelemetryConfig{Capacity: 500, DefaultListLimit: 50},
		CORS:          config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Observability: config.ObservabilityConfig{LogLevel: "info", LogFormat: "json"},
		Environment:   "development",
	}
}

func TestNewDependencies(t *testing.T) {
	cfg := testConfig()
	logger := zaptest.NewLogger(t)

	deps, err := NewDependencies(cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, deps)

	assert.NotNil(t, deps.Config)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Events)
	assert.Equal(t, 500, deps.Events.Capacity())
	assert.NotEqual(t, uuid.Nil, deps.InstanceID)

	assert.NoError(t, deps.Close())
}

func TestClose_NilLogger(t *testing.T) {
	deps := &Dependencies{}
	assert.NoError(t, deps.Close())
}

func TestNewDependencies_DistinctInstanceIDs(t *testing.T) {
	cfg := testConfig()
	logger := zaptest.NewLogger(t)

	a, err := NewDependencies(cfg, logger)
	require.NoError(t, err)
	b, err := NewDependencies(cfg, logger)
	require.NoError(t, err)

	assert.NotEqual(t, a.InstanceID, b.InstanceID)
}
