// =============================================================================
// lottosql - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// ('generate', 'validate', 'load', 'version') are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (lottosql)
//   ├── generateCmd (lottosql generate)
//   ├── validateCmd (lottosql validate)
//   ├── loadCmd     (lottosql load)
//   └── versionCmd  (lottosql version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lottosql",
	Short: "lottosql - Convert Set for Life draw exports to SQL INSERT scripts",
	Long: `lottosql is a CLI tool that converts "Set for Life" lottery draw
exports (CSV or XLSX) into a SQL script of INSERT statements for the
lottery_result table, ordered from the first draw upward.

Key Features:
  - Defensive per-field parsing: blank or malformed values become NULL
  - Oldest-first output regardless of export ordering
  - Validation warnings for out-of-range numbers and malformed dates
  - SQLite smoke loading of generated scripts

Example Usage:
  lottosql generate                      # Convert the configured export
  lottosql generate --input draws.xlsx   # Convert a specific spreadsheet
  lottosql validate                      # Check config and input shape
  lottosql load --db smoke.db            # Apply the generated script locally`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
