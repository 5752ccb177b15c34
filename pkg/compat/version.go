package compat

import (
	"strconv"
	"strings"
)

// CompareVersions orders two version strings by their bare numeric
// major.minor.patch tuple. It returns a positive value when a > b, a
// negative value when a < b, and zero when they are equal.
//
// Pre-release and build metadata (anything after the first '-' or '+') is
// stripped before comparing, so "1.2.0-beta" and "1.2.0" order as equal.
// Missing trailing components count as zero and non-numeric components parse
// as zero, so the comparison never fails on malformed input. Intentionally
// laxer than full semver: the curated table only ever pins plain numeric
// releases.
func CompareVersions(a, b string) int {
	partsA := strings.Split(stripSuffix(a), ".")
	partsB := strings.Split(stripSuffix(b), ".")

	n := len(partsA)
	if len(partsB) > n {
		n = len(partsB)
	}
	for i := 0; i < n; i++ {
		numA := numericComponent(partsA, i)
		numB := numericComponent(partsB, i)
		if numA != numB {
			return numA - numB
		}
	}
	return 0
}

// stripSuffix drops pre-release ("-...") and build ("+...") metadata.
func stripSuffix(v string) string {
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		return v[:i]
	}
	return v
}

// numericComponent returns the i-th dot component as a number, treating
// missing or non-numeric components as zero.
func numericComponent(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}
