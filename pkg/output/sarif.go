package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cargokit/editioncheck/pkg/analyzer"
	"github.com/cargokit/editioncheck/pkg/lockfile"
)

// SARIF format specification: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html

// SarifReport represents the top-level SARIF report structure
type SarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

// SarifRun represents a single run of the analysis tool
type SarifRun struct {
	Tool        SarifTool         `json:"tool"`
	Results     []SarifResult     `json:"results"`
	Invocations []SarifInvocation `json:"invocations"`
}

// SarifTool represents the tool that performed the analysis
type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

// SarifDriver represents the driver of the tool
type SarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SarifRule `json:"rules"`
}

// SarifRule represents a rule that was evaluated during the analysis
type SarifRule struct {
	ID               string            `json:"id"`
	ShortDescription SarifMessage      `json:"shortDescription"`
	FullDescription  SarifMessage      `json:"fullDescription"`
	Help             SarifMessage      `json:"help"`
	Properties       map[string]string `json:"properties,omitempty"`
}

// SarifResult represents a result of the analysis
type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SarifMessage    `json:"message"`
	Locations []SarifLocation `json:"locations"`
}

// SarifMessage represents a message in the SARIF report
type SarifMessage struct {
	Text string `json:"text"`
}

// SarifLocation represents a location in the analyzed project
type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

// SarifPhysicalLocation represents a physical location in the project
type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Region           SarifRegion           `json:"region,omitempty"`
}

// SarifArtifactLocation represents the location of an artifact
type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

// SarifRegion represents a region in the artifact
type SarifRegion struct {
	StartLine int `json:"startLine,omitempty"`
}

// SarifInvocation represents an invocation of the tool
type SarifInvocation struct {
	ExecutionSuccessful bool   `json:"executionSuccessful"`
	StartTimeUtc        string `json:"startTimeUtc"`
	EndTimeUtc          string `json:"endTimeUtc"`
}

// GenerateSarifReport converts an analysis result to SARIF format so CI
// systems can annotate the offending lockfile entries.
func GenerateSarifReport(result *analyzer.Result, version string) ([]byte, error) {
	rules := []SarifRule{
		{
			ID:               "edition-incompatible",
			ShortDescription: SarifMessage{Text: "Dependency requires a newer toolchain"},
			FullDescription:  SarifMessage{Text: "The locked version of this dependency requires a language edition or MSRV beyond what the target toolchain supports."},
			Help:             SarifMessage{Text: "Pin the dependency to its max compatible version with `cargo update -p <name> --precise <version>`."},
		},
	}

	results := make([]SarifResult, 0, len(result.Issues))
	for _, issue := range result.Issues {
		level := "warning"
		// Crates with known dependents break downstream builds.
		if len(issue.UsedBy) > 0 {
			level = "error"
		}

		messageText := fmt.Sprintf("%s %s exceeds max compatible version %s: %s",
			issue.Name, issue.CurrentVersion, issue.MaxCompatible, issue.Reason)
		if len(issue.UsedBy) > 0 {
			messageText += fmt.Sprintf(" (pulled in by %s)", strings.Join(issue.UsedBy, ", "))
		}

		results = append(results, SarifResult{
			RuleID:  "edition-incompatible",
			Level:   level,
			Message: SarifMessage{Text: messageText},
			Locations: []SarifLocation{
				{
					PhysicalLocation: SarifPhysicalLocation{
						ArtifactLocation: SarifArtifactLocation{
							URI: lockfile.FileName,
						},
					},
				},
			},
		})
	}

	now := time.Now().UTC()
	sarifReport := SarifReport{
		Schema:  "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Version: "2.1.0",
		Runs: []SarifRun{
			{
				Tool: SarifTool{
					Driver: SarifDriver{
						Name:           "editioncheck",
						Version:        version,
						InformationURI: "https://github.com/cargokit/editioncheck",
						Rules:          rules,
					},
				},
				Results: results,
				Invocations: []SarifInvocation{
					{
						ExecutionSuccessful: result.Success,
						StartTimeUtc:        now.Add(-time.Second).Format(time.RFC3339),
						EndTimeUtc:          now.Format(time.RFC3339),
					},
				},
			},
		},
	}

	return json.MarshalIndent(sarifReport, "", "  ")
}
