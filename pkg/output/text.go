package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cargokit/editioncheck/pkg/analyzer"
)

// PrintTextReport writes the analysis result in a tabular text format.
func PrintTextReport(w io.Writer, result *analyzer.Result) {
	const reasonLimit = 60 // Max characters for reason column

	if !result.Success {
		fmt.Fprintf(w, "Analysis failed: %s\n", result.Error)
		if result.Manifest != nil {
			printManifestSummary(w, result)
		}
		return
	}

	printManifestSummary(w, result)
	fmt.Fprintf(w, "Scanned %d packages in %s\n\n", result.TotalPackages, result.ProjectPath)

	if len(result.Issues) == 0 {
		fmt.Fprintln(w, "No incompatible dependencies found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) // minwidth, tabwidth, padding, padchar, flags

	fmt.Fprintln(tw, "NAME\tCURRENT\tMAX COMPAT\tFIRST INCOMPAT\tREASON")
	fmt.Fprintln(tw, "----\t-------\t----------\t--------------\t------")

	for _, issue := range result.Issues {
		reason := issue.Reason
		if len(reason) > reasonLimit {
			reason = reason[:reasonLimit-3] + "..."
		}
		reason = strings.ReplaceAll(reason, "\t", " ") // Replace tabs to avoid breaking alignment

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			issue.Name,
			issue.CurrentVersion,
			issue.MaxCompatible,
			issue.FirstIncompatible,
			reason,
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nFound %d incompatible dependencies. To pin them:\n", len(result.Issues))
	for _, cmd := range result.UpdateCommands {
		fmt.Fprintf(w, "  cargo %s\n", cmd)
	}
	fmt.Fprintf(w, "\nOr add to Cargo.toml:\n\n%s", result.PatchSection)
}

// printManifestSummary reports the two manifest signals.
func printManifestSummary(w io.Writer, result *analyzer.Result) {
	m := result.Manifest
	if m == nil {
		return
	}
	if m.HasRustVersion {
		fmt.Fprintf(w, "Manifest declares rust-version = %q\n", m.RustVersion)
	} else {
		fmt.Fprintln(w, "Manifest declares no rust-version (MSRV)")
	}
	if m.HasPatchSection {
		fmt.Fprintln(w, "Manifest already has a [patch.crates-io] section")
	}
}
