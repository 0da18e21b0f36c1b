package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/limbo/tenminute/pkg/cleanup"
	"github.com/limbo/tenminute/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		In   string
		Want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Want, logging.ParseLevel(tc.In), tc.In)
	}
}

func TestSetupWritesFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	file := filepath.Join(t.TempDir(), "api.log")
	logger := logging.Setup("warn", file)
	logger.Info("dropped")
	slog.Warn("kept", slog.String("k", "v"))
	cleanup.CleanUp()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=kept")
	assert.Contains(t, string(data), "k=v")
	assert.NotContains(t, string(data), "dropped")
}
