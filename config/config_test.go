package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8081
scheduler:
  round_robin:
    time_quantum: 3
  multilevel_queue:
    quantum_high: 1
log:
  format: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{
		Port:                  8081,
		RoundRobinTimeQuantum: 3,
		MultilevelQueueHigh:   1,
		MultilevelQueueLow:    4,
		LogLevel:              "info",
		LogFormat:             "json",
	}, cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 1234\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Port)
	assert.Equal(t, 7, cfg.RoundRobinTimeQuantum)
}

func TestLoad_DocumentedEnvNames(t *testing.T) {
	t.Setenv("SCHEDULER_PORT", "8080")
	t.Setenv("SCHEDULER_SCHEDULER_MULTILEVEL_QUEUE_QUANTUM_LOW", "6")
	t.Setenv("SCHEDULER_LOG_LEVEL", "debug")

	cfg, err := Load("../config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 6, cfg.MultilevelQueueLow)
	assert.Equal(t, 2, cfg.MultilevelQueueHigh)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
