// Package manifest inspects a project's Cargo.toml for the two signals the
// analysis needs: whether the project declares an MSRV and whether a
// crates-io patch section already exists. It deliberately avoids full TOML
// parsing; a line scan is enough for both signals.
package manifest

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/cargokit/editioncheck/pkg/logger"
)

// FileName is the manifest name at the project root.
const FileName = "Cargo.toml"

// PatchSectionHeader marks an existing crates-io patch section.
const PatchSectionHeader = "[patch.crates-io]"

// ErrNotFound is returned by Load when the project has no Cargo.toml. A
// missing manifest is fatal for the whole analysis.
var ErrNotFound = errors.New("Cargo.toml not found")

var rustVersionRe = regexp.MustCompile(`^rust-version\s*=\s*"([^"]+)"`)

// Info carries the manifest signals relevant to the analysis.
type Info struct {
	Path             string `json:"path"`
	HasRustVersion   bool   `json:"has_rust_version"`
	RustVersion      string `json:"rust_version,omitempty"`
	RustVersionValid bool   `json:"rust_version_valid,omitempty"`
	HasPatchSection  bool   `json:"has_patch_section"`
}

// Load scans the Cargo.toml under projectPath. A declared rust-version is
// validated with semver so callers can flag unparseable MSRV strings, but an
// invalid value is reported in the Info, not returned as an error.
func Load(projectPath string) (*Info, error) {
	path := filepath.Join(projectPath, FileName)
	logger.Debugf("manifest: reading %s", path)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer file.Close()

	info := &Info{Path: path}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == PatchSectionHeader {
			info.HasPatchSection = true
			continue
		}
		if m := rustVersionRe.FindStringSubmatch(line); m != nil {
			info.HasRustVersion = true
			info.RustVersion = m[1]
			if _, err := semver.NewVersion(m[1]); err == nil {
				info.RustVersionValid = true
			} else {
				logger.Warnf("manifest: rust-version %q is not a valid version", m[1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return info, nil
}
