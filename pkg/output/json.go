package output

import (
	"encoding/json"

	"github.com/cargokit/editioncheck/pkg/analyzer"
)

// GenerateJSONReport converts an analysis result to indented JSON.
func GenerateJSONReport(result *analyzer.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
