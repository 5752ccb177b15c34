package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cargokit/editioncheck/pkg/compat"
	"github.com/cargokit/editioncheck/pkg/config"
	"github.com/cargokit/editioncheck/pkg/logger"
)

// Version is set during build using ldflags
var Version = "dev"

var (
	projectPath  string
	databasePath string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "editioncheck",
	Short:   "Checks Cargo dependencies for edition and MSRV incompatibilities",
	Long: `editioncheck scans a project's Cargo.lock against a curated compatibility
table and reports dependencies whose locked version requires a newer language
edition or MSRV than the target toolchain supports. In fix mode it pins each
offending crate to its max compatible version via cargo.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectPath, "path", "p", ".", "Path to the Cargo project directory")
	rootCmd.PersistentFlags().StringVarP(&databasePath, "database", "d", "", "Path to a compatibility database TOML file (default: embedded)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadTable resolves the compatibility table: an explicit --database flag
// wins, then the config file's database path, then the embedded default.
func loadTable(cfg *config.Config) (compat.Table, error) {
	path := databasePath
	if path == "" {
		path = cfg.Database
	}
	if path != "" {
		return compat.LoadTableFile(path)
	}
	return compat.LoadDefaultTable()
}
