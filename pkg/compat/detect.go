package compat

import (
	"github.com/cargokit/editioncheck/pkg/lockfile"
	"github.com/cargokit/editioncheck/pkg/logger"
)

// Issue pairs a locked package with the table entry it violates. An issue is
// only produced when the locked version is strictly greater than the entry's
// MaxCompatible.
type Issue struct {
	Name              string   `json:"name"`
	CurrentVersion    string   `json:"current_version"`
	MaxCompatible     string   `json:"max_compatible"`
	FirstIncompatible string   `json:"first_incompatible"`
	Reason            string   `json:"reason"`
	UsedBy            []string `json:"used_by,omitempty"`
	Source            string   `json:"source,omitempty"`
}

// Detect joins locked packages against the compatibility table. Issues come
// back in the order the packages were parsed from the lockfile, one per
// offending package record (the same crate name can appear more than once
// when multiple versions coexist in the graph). Packages absent from the
// table never produce an issue.
func Detect(packages []lockfile.Package, table Table) []Issue {
	var issues []Issue
	for _, pkg := range packages {
		entry, ok := table.Lookup(pkg.Name)
		if !ok {
			continue
		}
		if CompareVersions(pkg.Version, entry.MaxCompatible) <= 0 {
			continue
		}
		logger.Debugf("compat: %s %s exceeds max compatible %s", pkg.Name, pkg.Version, entry.MaxCompatible)
		issues = append(issues, Issue{
			Name:              pkg.Name,
			CurrentVersion:    pkg.Version,
			MaxCompatible:     entry.MaxCompatible,
			FirstIncompatible: entry.FirstIncompatible,
			Reason:            entry.Reason,
			UsedBy:            entry.UsedBy,
			Source:            pkg.Source,
		})
	}
	return issues
}
