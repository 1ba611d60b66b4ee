package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/easel/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 0.001, cfg.Scale, 1e-15)
	assert.Equal(t, 0.01, cfg.HoverOffset)
	assert.Equal(t, -0.1, cfg.Dip.OffsetX)
	assert.Equal(t, 0.2, cfg.Dip.Retreat)
	assert.Equal(t, 500*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 0.05, cfg.Step)
	assert.False(t, cfg.Jumps.Enabled())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
hover_offset: 0.02
settle_delay: 250ms
dip:
  offset_x: 0.15
jumps: 1.5
store:
  kind: redis
  redis:
    addr: redis:6379
    ttl: 1h
arm:
  workspace: [-1, -1, 0, 1, 1, 1]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.02, cfg.HoverOffset)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleDelay)
	assert.Equal(t, 0.15, cfg.Dip.OffsetX)
	assert.Equal(t, -0.1, cfg.Dip.OffsetY, "untouched nested field keeps its default")
	assert.Equal(t, 0.2, cfg.Dip.Retreat)
	assert.True(t, cfg.Jumps.Enabled())
	assert.Equal(t, 1.5, cfg.Jumps.Threshold)
	assert.Equal(t, "redis", cfg.Store.Kind)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "easel:session:", cfg.Store.Redis.Prefix)
	assert.Equal(t, time.Hour, cfg.Store.Redis.TTL)
	assert.Equal(t, []float64{-1, -1, 0, 1, 1, 1}, cfg.Arm.Workspace)
}

func TestLoad_JumpsDisabledKeyword(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "jumps: disabled\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Jumps.Enabled())
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Load(writeConfig(t, "hover: 0.1\n"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	_, err := config.Load(writeConfig(t, "hover_offset: 0\nstep: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hover_offset")
	assert.Contains(t, err.Error(), "step")
}

func TestValidate_StoreKind(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Kind = "etcd"
	assert.ErrorContains(t, cfg.Validate(), "etcd")
}

func TestLoad_ExampleConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "..", "examples", "easel.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Dip, cfg.Dip)
	assert.Equal(t, "file", cfg.Store.Kind)
	assert.Len(t, cfg.Arm.Workspace, 6)
	assert.Equal(t, 24*time.Hour, cfg.Store.Redis.TTL)
}

func TestLoad_HomeReplacesDefault(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "arm:\n  home: [0.1, 0.2, 0.3]\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, cfg.Arm.Home)

	_, err = config.Load(writeConfig(t, "arm:\n  home: [0.1, 0.2]\n"))
	assert.ErrorContains(t, err, "arm.home needs 3 values, got 2")
}

func TestLoad_PartialSectionKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "dip:\n  retreat: 0.3\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Dip.Retreat)
	assert.Equal(t, -0.1, cfg.Dip.OffsetX)
	assert.Equal(t, []float64{0.3, 0, 0.5}, cfg.Arm.Home)
}
