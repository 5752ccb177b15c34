// Package analyzer ties the pipeline together: manifest check, lockfile
// parse, issue detection, and remediation text generation. Analysis never
// panics or returns a Go error; every failure mode is captured in the Result
// so callers decide the exit code from one place.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/cargokit/editioncheck/pkg/compat"
	"github.com/cargokit/editioncheck/pkg/lockfile"
	"github.com/cargokit/editioncheck/pkg/logger"
	"github.com/cargokit/editioncheck/pkg/manifest"
	"github.com/cargokit/editioncheck/pkg/remediation"
)

// Result is the aggregate outcome of one analysis run.
//
// Success is false for the two fatal cases: a missing manifest (no further
// work is attempted) and a missing lockfile (manifest metadata is still
// returned so callers can report what was found).
type Result struct {
	Success        bool           `json:"success"`
	Error          string         `json:"error,omitempty"`
	ProjectPath    string         `json:"project_path"`
	Manifest       *manifest.Info `json:"manifest,omitempty"`
	LockfileFound  bool           `json:"lockfile_found"`
	TotalPackages  int            `json:"total_packages"`
	Issues         []compat.Issue `json:"issues"`
	UpdateCommands []string       `json:"update_commands,omitempty"`
	PatchSection   string         `json:"patch_section,omitempty"`
}

// Analyzer runs the detection pipeline against one project directory.
type Analyzer struct {
	Table compat.Table
	// Ignore reports crate names the detector should not flag, typically
	// fed from the config file's ignore list. Nil means ignore nothing.
	Ignore func(name string) bool
}

// New returns an analyzer over the given compatibility table.
func New(table compat.Table) *Analyzer {
	return &Analyzer{Table: table}
}

// Analyze inspects the project at path and returns the aggregate result.
func (a *Analyzer) Analyze(path string) *Result {
	result := &Result{ProjectPath: path, Issues: []compat.Issue{}}

	info, err := manifest.Load(path)
	if err != nil {
		if errors.Is(err, manifest.ErrNotFound) {
			result.Error = fmt.Sprintf("no %s found in %s: not a Cargo project", manifest.FileName, path)
		} else {
			result.Error = fmt.Sprintf("failed to read %s: %v", manifest.FileName, err)
		}
		return result
	}
	result.Manifest = info

	lf, err := lockfile.Load(path)
	if err != nil {
		if errors.Is(err, lockfile.ErrNotFound) {
			result.Error = fmt.Sprintf("no %s found in %s: run cargo once to generate it", lockfile.FileName, path)
		} else {
			result.Error = fmt.Sprintf("failed to read %s: %v", lockfile.FileName, err)
		}
		return result
	}
	result.LockfileFound = true
	result.TotalPackages = len(lf.Packages)

	packages := lf.Packages
	if a.Ignore != nil {
		packages = make([]lockfile.Package, 0, len(lf.Packages))
		for _, pkg := range lf.Packages {
			if a.Ignore(pkg.Name) {
				logger.Debugf("analyzer: ignoring %s per configuration", pkg.Name)
				continue
			}
			packages = append(packages, pkg)
		}
	}

	if issues := compat.Detect(packages, a.Table); issues != nil {
		result.Issues = issues
		result.UpdateCommands = remediation.UpdateCommands(issues)
		result.PatchSection = remediation.PatchSection(issues)
	}

	result.Success = true
	logger.Debugf("analyzer: %d of %d packages flagged", len(result.Issues), result.TotalPackages)
	return result
}
