package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cargokit/editioncheck/pkg/analyzer"
	"github.com/cargokit/editioncheck/pkg/config"
	"github.com/cargokit/editioncheck/pkg/output"
)

var format string // output format: text, json, or sarif

// checkCmd represents the check subcommand
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check locked dependencies against the compatibility table",
	Long: `Check parses Cargo.lock, flags every dependency whose locked version is
newer than the curated max compatible version, and prints the update commands
and patch section that would pin them. Exits 1 when issues are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, cfg, err := runAnalysis()
		if err != nil {
			return err
		}
		if err := writeReport(result, cfg); err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("analysis failed: %s", result.Error)
		}
		if len(result.Issues) > 0 {
			// Issues found: report was already printed, exit non-zero
			// without cobra repeating an error message.
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, or sarif (default from config, else text)")
}

// runAnalysis wires config, table, and analyzer for both check and fix.
func runAnalysis() (*analyzer.Result, *config.Config, error) {
	cfg, err := config.FindAndLoadConfig(projectPath)
	if err != nil {
		return nil, nil, err
	}
	table, err := loadTable(cfg)
	if err != nil {
		return nil, nil, err
	}
	a := analyzer.New(table)
	a.Ignore = cfg.IsPackageIgnored
	return a.Analyze(projectPath), cfg, nil
}

// writeReport renders the result in the selected format, to the configured
// output file or stdout.
func writeReport(result *analyzer.Result, cfg *config.Config) error {
	selected := format
	if selected == "" {
		selected = cfg.Output.Format
	}

	var data []byte
	var err error
	switch selected {
	case "json":
		data, err = output.GenerateJSONReport(result)
	case "sarif":
		data, err = output.GenerateSarifReport(result, Version)
	case "", "text":
		if cfg.Output.File != "" {
			f, err := os.Create(cfg.Output.File)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			output.PrintTextReport(f, result)
			return nil
		}
		output.PrintTextReport(os.Stdout, result)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected text, json, or sarif)", selected)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s report: %w", selected, err)
	}

	if cfg.Output.File != "" {
		return os.WriteFile(cfg.Output.File, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}
