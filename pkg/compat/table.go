package compat

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cargokit/editioncheck/pkg/logger"
)

//go:embed database.toml
var defaultDatabase []byte

// Entry describes the compatibility boundary for one crate: the newest
// version that still builds on the target toolchain and the first version
// that does not.
type Entry struct {
	MaxCompatible     string   `toml:"max_compatible" json:"max_compatible"`
	FirstIncompatible string   `toml:"first_incompatible" json:"first_incompatible"`
	Reason            string   `toml:"reason" json:"reason"`
	UsedBy            []string `toml:"used_by" json:"used_by,omitempty"`
	Priority          string   `toml:"priority" json:"priority,omitempty"`
}

// Table maps crate names to their compatibility entries. Lookups are by
// exact name only; there is one entry per crate regardless of how many
// version families exist upstream. The table is loaded once at startup and
// never mutated afterwards.
type Table map[string]Entry

// Lookup returns the entry for an exact crate name.
func (t Table) Lookup(name string) (Entry, bool) {
	entry, ok := t[name]
	return entry, ok
}

// databaseFile is the on-disk shape of the compatibility database.
type databaseFile struct {
	Crates map[string]Entry `toml:"crates"`
}

// LoadDefaultTable decodes the database compiled into the binary.
func LoadDefaultTable() (Table, error) {
	return decodeTable(defaultDatabase)
}

// LoadTableFile reads a compatibility database from an external TOML file,
// allowing the curated table to be refreshed without rebuilding the tool.
func LoadTableFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compatibility database: %w", err)
	}
	table, err := decodeTable(data)
	if err != nil {
		return nil, fmt.Errorf("invalid compatibility database %s: %w", path, err)
	}
	logger.Debugf("compat: loaded %d entries from %s", len(table), path)
	return table, nil
}

func decodeTable(data []byte) (Table, error) {
	var file databaseFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.Crates == nil {
		file.Crates = map[string]Entry{}
	}
	return Table(file.Crates), nil
}
