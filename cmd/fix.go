package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cargokit/editioncheck/pkg/logger"
	"github.com/cargokit/editioncheck/pkg/remediation"
)

var streamOutput bool

// fixCmd represents the fix subcommand
var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Pin incompatible dependencies to their max compatible versions",
	Long: `Fix writes a .cargo/config.toml with MSRV-aware resolver settings (unless
one already exists) and runs "cargo update -p <name> --precise <version>" for
every incompatible dependency. Crates no longer present in the dependency
graph are skipped; other cargo failures are reported per crate and never
abort the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, _, err := runAnalysis()
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("analysis failed: %s", result.Error)
		}

		if len(result.Issues) == 0 {
			logger.Infof("No incompatible dependencies found in %s", result.ProjectPath)
		} else {
			logger.Infof("Pinning %d dependencies in %s", len(result.Issues), result.ProjectPath)
		}

		executor := remediation.NewExecutor()
		fix := executor.Apply(result.ProjectPath, result.Issues, streamOutput)

		if fix.ConfigError != "" {
			logger.Warnf("Could not write %s: %s", fix.ConfigPath, fix.ConfigError)
		}
		for _, outcome := range fix.Outcomes {
			switch outcome.Status {
			case remediation.StatusUpdated:
				logger.Infof("Pinned %s to %s", outcome.Name, outcome.Version)
			case remediation.StatusSkipped:
				logger.Infof("Skipped %s (%s)", outcome.Name, outcome.Detail)
			case remediation.StatusFailed:
				logger.Errorf("Failed to pin %s: %s", outcome.Name, outcome.Detail)
			}
		}
		logger.Infof("Fix complete: %d updated, %d skipped, %d failed",
			fix.Updated, fix.Skipped, fix.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fixCmd)
	fixCmd.Flags().BoolVar(&streamOutput, "stream", false, "Stream cargo output instead of capturing it")
}
