package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/tenminute/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TENMIN_TEST_FROM_FILE=file\nTENMIN_TEST_OVERRIDDEN=file\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("TENMIN_TEST_OVERRIDDEN", "env")
	t.Setenv("TENMIN_TEST_INT", "42")
	t.Setenv("TENMIN_TEST_BAD_INT", "forty")
	t.Setenv("TENMIN_TEST_BOOL", "true")
	t.Setenv("TENMIN_TEST_DURATION", "250ms")
	t.Setenv("TENMIN_TEST_BAD_DURATION", "soon")

	cfg := config.New()
	assert.Same(t, cfg, config.New())

	assert.Equal(t, "file", cfg.GetString("TENMIN_TEST_FROM_FILE"))
	assert.Equal(t, "env", cfg.GetString("TENMIN_TEST_OVERRIDDEN"))
	assert.Equal(t, "fallback", cfg.GetStringOr("TENMIN_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, cfg.GetInt("TENMIN_TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("TENMIN_TEST_BAD_INT", 1))
	assert.True(t, cfg.GetBool("TENMIN_TEST_BOOL", false))
	assert.True(t, cfg.GetBool("TENMIN_TEST_MISSING", true))
	assert.Equal(t, 250*time.Millisecond, cfg.GetDuration("TENMIN_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("TENMIN_TEST_BAD_DURATION", time.Second))
}
