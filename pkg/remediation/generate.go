package remediation

import (
	"fmt"
	"strings"

	"github.com/cargokit/editioncheck/pkg/compat"
)

// CargoConfigPath is where the generated cargo configuration lands,
// relative to the project root.
const CargoConfigPath = ".cargo/config.toml"

// cargoConfig is written verbatim when no .cargo/config.toml exists yet. It
// makes the resolver fall back to MSRV-compatible versions, fetches git
// dependencies through the CLI, uses the sparse registry protocol, and pins
// the build target.
const cargoConfig = `[resolver]
incompatible-rust-versions = "fallback"

[net]
git-fetch-with-cli = true

[registries.crates-io]
protocol = "sparse"

[build]
target = "x86_64-unknown-linux-gnu"
`

// UpdateCommands returns one cargo argument string per issue, in issue
// order, pinning each crate to its max compatible version. Duplicate crate
// names produce duplicate commands.
func UpdateCommands(issues []compat.Issue) []string {
	commands := make([]string, 0, len(issues))
	for _, issue := range issues {
		commands = append(commands, fmt.Sprintf("update -p %s --precise %s", issue.Name, issue.MaxCompatible))
	}
	return commands
}

// PatchSection renders a [patch.crates-io] block pinning every issue's crate
// to exactly its max compatible version, one line per issue in issue order.
func PatchSection(issues []compat.Issue) string {
	var b strings.Builder
	b.WriteString("[patch.crates-io]\n")
	for _, issue := range issues {
		fmt.Fprintf(&b, "%s = \"=%s\"\n", issue.Name, issue.MaxCompatible)
	}
	return b.String()
}

// CargoConfig returns the static configuration text for .cargo/config.toml.
// The content is identical for every project.
func CargoConfig() string {
	return cargoConfig
}
