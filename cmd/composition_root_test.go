package cmd

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		HTTPPort:                "8080",
		BackendURL:              "http://127.0.0.1:8000",
		RequestTimeout:          time.Second,
		AssignmentFailurePolicy: "rollback",
		NoticeCapacity:          10,
	}
}

func TestNewCompositionRoot(t *testing.T) {
	root, err := NewCompositionRoot(testConfig(), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.Nil(t, root.journalRepository())
	assert.NotNil(t, root.CreateServer())
	assert.NotNil(t, root.CreateJobManager())
	root.Shutdown()
}

func TestNewCompositionRoot_InvalidPolicy(t *testing.T) {
	cfg := testConfig()
	cfg.AssignmentFailurePolicy = "retry"

	_, err := NewCompositionRoot(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestNewCompositionRoot_InvalidBackendURL(t *testing.T) {
	cfg := testConfig()
	cfg.BackendURL = "platform"

	_, err := NewCompositionRoot(cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}
