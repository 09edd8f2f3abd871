package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortTOMLSections(t *testing.T) {
	in := "top = 1\n[pane]\n  a = 1\n\n[logging]\n  level = 'info'\n"

	out := sortTOMLSections(in)

	assert.Equal(t, "top = 1\n\n[logging]\n  level = 'info'\n\n[pane]\n  a = 1\n", out)
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Less(t, strings.Index(content, "[logging]"), strings.Index(content, "[pane]"))
	assert.Contains(t, content, "collapsed_size = 10")

	assert.Error(t, WriteConfigOrdered(nil, path))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "collapsepane configuration", doc["title"])
	assert.Contains(t, string(data), "snap_points")
	assert.Contains(t, string(data), "collapse_button_offset")
}

func TestWriteSchemaFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	path, err := WriteSchemaFile(dir)

	require.NoError(t, err)
	assert.FileExists(t, path)
}
