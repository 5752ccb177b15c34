package analyzer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargokit/editioncheck/pkg/compat"
)

const testManifest = `[package]
name = "demo"
version = "0.1.0"
edition = "2021"
rust-version = "1.74"

[dependencies]
blake3 = "1"
serde = "1"
`

const testLockfile = `version = 3

[[package]]
name = "blake3"
version = "1.8.3"
source = "registry+https://github.com/rust-lang/crates.io-index"

[[package]]
name = "serde"
version = "1.0.219"
source = "registry+https://github.com/rust-lang/crates.io-index"

[[package]]
name = "zeroize"
version = "1.8.1"
source = "registry+https://github.com/rust-lang/crates.io-index"
`

func testTable() compat.Table {
	return compat.Table{
		"blake3":  {MaxCompatible: "1.5.0", FirstIncompatible: "1.6.0", Reason: "raised MSRV"},
		"zeroize": {MaxCompatible: "1.7.0", FirstIncompatible: "1.8.0", Reason: "raised MSRV"},
	}
}

// writeProject lays out a minimal Cargo project in a temp dir.
func writeProject(t *testing.T, manifest, lock string) string {
	t.Helper()
	dir := t.TempDir()
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0644))
	}
	if lock != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.lock"), []byte(lock), 0644))
	}
	return dir
}

func TestAnalyze_MissingManifestIsFatal(t *testing.T) {
	dir := writeProject(t, "", testLockfile)

	result := New(testTable()).Analyze(dir)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Nil(t, result.Manifest)
	// No lockfile parsing is attempted when the manifest is missing.
	assert.False(t, result.LockfileFound)
	assert.Zero(t, result.TotalPackages)
}

func TestAnalyze_MissingLockfileKeepsManifestMetadata(t *testing.T) {
	dir := writeProject(t, testManifest, "")

	result := New(testTable()).Analyze(dir)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	require.NotNil(t, result.Manifest)
	assert.True(t, result.Manifest.HasRustVersion)
	assert.False(t, result.LockfileFound)
}

func TestAnalyze_DetectsIssuesAndGeneratesRemediation(t *testing.T) {
	dir := writeProject(t, testManifest, testLockfile)

	result := New(testTable()).Analyze(dir)

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.True(t, result.LockfileFound)
	assert.Equal(t, 3, result.TotalPackages)

	require.Len(t, result.Issues, 2)
	assert.Equal(t, "blake3", result.Issues[0].Name)
	assert.Equal(t, "zeroize", result.Issues[1].Name)

	require.Len(t, result.UpdateCommands, 2)
	assert.Equal(t, "update -p blake3 --precise 1.5.0", result.UpdateCommands[0])
	assert.Equal(t, "update -p zeroize --precise 1.7.0", result.UpdateCommands[1])

	assert.Equal(t, "[patch.crates-io]\nblake3 = \"=1.5.0\"\nzeroize = \"=1.7.0\"\n", result.PatchSection)
}

func TestAnalyze_CleanProject(t *testing.T) {
	lock := `[[package]]
name = "serde"
version = "1.0.219"
`
	dir := writeProject(t, testManifest, lock)

	result := New(testTable()).Analyze(dir)

	assert.True(t, result.Success)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.UpdateCommands)
	assert.Empty(t, result.PatchSection)
}

func TestAnalyze_IgnoreListSuppressesIssues(t *testing.T) {
	dir := writeProject(t, testManifest, testLockfile)

	a := New(testTable())
	a.Ignore = func(name string) bool { return name == "blake3" }
	result := a.Analyze(dir)

	assert.True(t, result.Success)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "zeroize", result.Issues[0].Name)
}
