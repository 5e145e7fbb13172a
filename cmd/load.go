// =============================================================================
// lottosql - Load Command
// =============================================================================
//
// This file defines the 'load' command, which smoke-loads a generated script
// into a local SQLite database. It creates the lottery_result table when
// missing, executes every INSERT inside one transaction, and reports the row
// count afterwards.
//
// COMMAND USAGE:
//   lottosql load --db smoke.db [--script path/to/script.sql]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/coolrunnings/lottosql/internal/config"
	"github.com/coolrunnings/lottosql/internal/loader"
	"github.com/spf13/cobra"
)

// dbPath is the SQLite database file to load into.
var dbPath string

// scriptPath overrides the script to apply; defaults to the configured
// output file.
var scriptPath string

// loadCmd represents the 'load' command.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Apply a generated script to a local SQLite database",
	Long: `The load command applies a generated SQL script to a local SQLite
database as a smoke test. USE statements and comments are skipped; every
INSERT runs inside a single transaction, so a bad statement rolls back the
entire load.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad()
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(
		&dbPath,
		"db",
		"lottery.db",
		"SQLite database file to load into",
	)

	loadCmd.Flags().StringVar(
		&scriptPath,
		"script",
		"",
		"SQL script to apply (defaults to the configured output_file)",
	)
}

// runLoad applies the script to the SQLite database.
func runLoad() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	script := scriptPath
	if script == "" {
		script = cfg.OutputFile
	}

	db, err := loader.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	executed, err := loader.Apply(db, script)
	if err != nil {
		return fmt.Errorf("load failed after %d statements: %w", executed, err)
	}

	rows, err := loader.Count(db)
	if err != nil {
		return err
	}

	fmt.Println("=== Load Complete ===")
	fmt.Printf("Statements executed: %d\n", executed)
	fmt.Printf("Rows in table:       %d\n", rows)
	fmt.Printf("Database:            %s\n", dbPath)

	return nil
}
