package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findKey(keys []KeyInfo, key string) (KeyInfo, bool) {
	for _, k := range keys {
		if k.Key == key {
			return k, true
		}
	}
	return KeyInfo{}, false
}

func TestMigrator_Check(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[pane]\ncollapsed_size = 7\nlegacy_key = true\n")

	plan, err := NewMigrator().Check(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	assert.False(t, plan.Empty())
	assert.Equal(t, []string{"pane.legacy_key"}, plan.Unknown)
	assert.Len(t, plan.Missing, 15)

	_, found := findKey(plan.Missing, "pane.collapsed_size")
	assert.False(t, found, "keys the user set are not missing")

	sizes, found := findKey(plan.Missing, "pane.initial_sizes")
	require.True(t, found)
	assert.Equal(t, "list", sizes.Type)
	assert.Equal(t, "[1, 2]", sizes.DefaultValue)

	color, found := findKey(plan.Missing, "pane.separator_color")
	require.True(t, found)
	assert.Equal(t, "string", color.Type)
	assert.Equal(t, `"#000000"`, color.DefaultValue)

	fileLog, found := findKey(plan.Missing, "logging.enable_file_log")
	require.True(t, found)
	assert.Equal(t, "bool", fileLog.Type)
	assert.Equal(t, "true", fileLog.DefaultValue)
}

func TestMigrator_CheckDefaultsFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	plan, err := NewMigrator().Check(path)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
}

func TestMigrator_Migrate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, dir, "[pane]\ncollapsed_size = 7\nlegacy_key = true\n")

	plan, err := NewMigrator().Migrate(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"pane.legacy_key"}, plan.Unknown)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "legacy_key")

	var got Config
	require.NoError(t, toml.Unmarshal(data, &got))
	assert.Equal(t, 7, got.Pane.CollapsedSize)
	assert.Equal(t, defaultSeparatorWidth, got.Pane.SeparatorWidth)
	assert.Equal(t, defaultLogLevel, got.Logging.Level)

	again, err := NewMigrator().Check(path)
	require.NoError(t, err)
	assert.True(t, again.Empty())
}

func TestMigrator_MigrateRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	original := "[pane]\nseparator_width = 0\n"
	writeConfig(t, dir, original)

	_, err := NewMigrator().Migrate(path)
	require.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data), "invalid files are left untouched")
}

func TestMigrator_Errors(t *testing.T) {
	_, err := NewMigrator().Check(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	writeConfig(t, dir, "[pane\n")
	_, err = NewMigrator().Check(filepath.Join(dir, "config.toml"))
	assert.Error(t, err)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", formatValue(nil))
	assert.Equal(t, `""`, formatValue(""))
	assert.Equal(t, "[]", formatValue([]int{}))
	assert.Equal(t, "20", formatValue(20))
	assert.Equal(t, "[0.5, 1]", formatValue([]float64{0.5, 1}))
}
