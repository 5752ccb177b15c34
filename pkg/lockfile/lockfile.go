package lockfile

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/cargokit/editioncheck/pkg/logger"
)

// FileName is the lockfile name Cargo writes at the project root.
const FileName = "Cargo.lock"

// blockDelimiter starts a new package block in the lockfile.
const blockDelimiter = "[[package]]"

// ErrNotFound is returned by Load when no Cargo.lock exists at the project
// path. Callers must treat this differently from a lockfile with zero
// packages.
var ErrNotFound = errors.New("Cargo.lock not found")

// Package is a single resolved dependency from the lockfile. The same name
// may appear more than once when multiple versions coexist in the graph.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  string `json:"source,omitempty"`
}

// Lockfile holds the parsed contents of a Cargo.lock file.
type Lockfile struct {
	Path     string    `json:"path"`
	Packages []Package `json:"packages"`
}

// Parse scans lockfile text line by line and returns one Package per
// [[package]] block that carries both a name and a version. Blocks missing
// either field are dropped. Only simple key = "value" lines are recognized,
// which covers both lockfile schema versions Cargo emits.
func Parse(text string) []Package {
	var packages []Package
	var current *Package

	flush := func() {
		if current != nil && current.Name != "" && current.Version != "" {
			packages = append(packages, *current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == blockDelimiter {
			flush()
			current = &Package{}
			continue
		}
		if current == nil {
			continue
		}
		switch key, value, ok := quotedValue(line); {
		case !ok:
		case key == "name":
			current.Name = value
		case key == "version":
			current.Version = value
		case key == "source":
			current.Source = value
		}
	}
	flush()

	return packages
}

// quotedValue splits a `key = "value"` line. Lines that do not match the
// shape are ignored by the caller.
func quotedValue(line string) (key, value string, ok bool) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:eq])
	rest := strings.TrimSpace(line[eq+1:])
	if len(rest) < 2 || !strings.HasPrefix(rest, `"`) || !strings.HasSuffix(rest, `"`) {
		return "", "", false
	}
	return key, rest[1 : len(rest)-1], true
}

// Load reads and parses the Cargo.lock under projectPath. A missing file
// yields ErrNotFound; an empty file yields a lockfile with no packages.
func Load(projectPath string) (*Lockfile, error) {
	path := filepath.Join(projectPath, FileName)
	logger.Debugf("lockfile: reading %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lf := &Lockfile{Path: path, Packages: Parse(string(data))}
	logger.Debugf("lockfile: parsed %d packages", len(lf.Packages))
	return lf, nil
}
