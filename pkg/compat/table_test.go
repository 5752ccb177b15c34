package compat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultTable(t *testing.T) {
	table, err := LoadDefaultTable()
	require.NoError(t, err)
	require.NotEmpty(t, table)

	entry, ok := table.Lookup("blake3")
	require.True(t, ok, "embedded database should cover blake3")
	assert.Equal(t, "1.5.0", entry.MaxCompatible)
	assert.Equal(t, "1.6.0", entry.FirstIncompatible)
	assert.NotEmpty(t, entry.Reason)
}

func TestLookup_ExactNameOnly(t *testing.T) {
	table, err := LoadDefaultTable()
	require.NoError(t, err)

	_, ok := table.Lookup("blake")
	assert.False(t, ok, "prefix of a known crate must not match")
	_, ok = table.Lookup("Blake3")
	assert.False(t, ok, "lookup is case sensitive")
}

func TestLoadTableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.toml")
	content := `
[crates.example]
max_compatible = "0.9.0"
first_incompatible = "1.0.0"
reason = "edition 2024"
used_by = ["other"]
priority = "high"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := LoadTableFile(path)
	require.NoError(t, err)
	require.Len(t, table, 1)

	entry, ok := table.Lookup("example")
	require.True(t, ok)
	assert.Equal(t, "0.9.0", entry.MaxCompatible)
	assert.Equal(t, []string{"other"}, entry.UsedBy)
	assert.Equal(t, "high", entry.Priority)
}

func TestLoadTableFile_Missing(t *testing.T) {
	_, err := LoadTableFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadTableFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))

	_, err := LoadTableFile(path)
	assert.Error(t, err)
}
