package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
}

func TestManagerLoad_CreatesDefaultFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "collapsepane")
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, m.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	cfg := m.Get()
	assert.Equal(t, []float64{1, 2}, cfg.Pane.InitialSizes)
	assert.Equal(t, defaultCollapsedSize, cfg.Pane.CollapsedSize)
	assert.Equal(t, OrientationVertical, cfg.Pane.Orientation)
	assert.Equal(t, defaultSnapRadius, cfg.Pane.SnapRadius)
}

func TestManagerLoad_ReadsAndNormalizesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[pane]
orientation = "Horizontal"
inverted = true
snap_points = [30, -1, 10, 30]
separator_color = "#ff0000"
`)
	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, OrientationHorizontal, cfg.Pane.Orientation)
	assert.True(t, cfg.Pane.Inverted)
	assert.Equal(t, []int{10, 30}, cfg.Pane.SnapPoints)
	assert.Equal(t, "#ff0000", cfg.Pane.SeparatorColor)
	// untouched keys keep their defaults
	assert.Equal(t, []float64{1, 2}, cfg.Pane.InitialSizes)
}

func TestManagerLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[pane]\ncollapsed_size = 12\n")
	t.Setenv("COLLAPSEPANE_PANE_COLLAPSED_SIZE", "7")
	t.Setenv("COLLAPSEPANE_LOG_LEVEL", "debug")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, 7, m.Get().Pane.CollapsedSize)
	assert.Equal(t, "debug", m.Get().Logging.Level)
}

func TestManagerLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[pane]\nseparator_width = 0\n[logging]\nlevel = \"loud\"\n")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	err = m.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pane.separator_width")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestManagerLoad_MalformedTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[pane\n")

	m, err := NewManagerAt(dir)
	require.NoError(t, err)

	assert.Error(t, m.Load())
}

func TestManagerSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Pane.InitialSizes = []float64{3, 1}
	cfg.Pane.SnapPoints = []int{20, 40}
	require.NoError(t, m.Save(cfg))

	other, err := NewManagerAt(dir)
	require.NoError(t, err)
	require.NoError(t, other.Load())
	assert.Equal(t, []float64{3, 1}, other.Get().Pane.InitialSizes)
	assert.Equal(t, []int{20, 40}, other.Get().Pane.SnapPoints)
}

func TestManagerSave_RejectsInvalid(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Pane.SeparatorWidth = 0

	assert.Error(t, m.Save(cfg))
	assert.Error(t, m.Save(nil))
}

func TestManagerGet_ReturnsCopy(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Pane.InitialSizes[0] = 99

	assert.Equal(t, 1.0, m.Get().Pane.InitialSizes[0])
}
