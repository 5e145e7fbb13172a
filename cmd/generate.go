// =============================================================================
// lottosql - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, the main command of the tool.
// It reads the draw export, transforms each row into an INSERT statement
// and writes the SQL script.
//
// COMMAND USAGE:
//   lottosql generate [flags]
//
// FLAGS:
//   --input    : Override the configured input file
//   --output   : Override the configured output file
//   --dry-run  : Parse and validate without writing the script
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Read the export (CSV or XLSX)
//   3. Reverse rows so the oldest draw comes first
//   4. Validate rows (warnings only)
//   5. Transform rows and render the SQL script
//   6. Write output, warning log, and archive the input
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/coolrunnings/lottosql/internal/config"
	"github.com/coolrunnings/lottosql/internal/converter"
	"github.com/spf13/cobra"
)

// inputFile overrides the configured input path.
var inputFile string

// outputFile overrides the configured output path.
var outputFile string

// dryRun parses and validates without writing output files.
var dryRun bool

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Convert the draw export into a SQL INSERT script",
	Long: `The generate command reads the configured draw export, transforms every
valid row into an INSERT statement for the lottery_result table, and writes
the complete script (preamble, USE statement, INSERTs, record count trailer).

Rows with fewer than 11 fields are skipped. Blank or malformed numeric
fields become NULL. Suspicious values produce warnings but never suppress
their INSERT statement.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&inputFile,
		"input",
		"",
		"Draw export to convert (overrides the configured input_file)",
	)

	generateCmd.Flags().StringVar(
		&outputFile,
		"output",
		"",
		"Script path to write (overrides the configured output_file)",
	)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Parse and validate without writing output files",
	)
}

// runGenerate executes the conversion pipeline.
func runGenerate() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if inputFile != "" {
		cfg.InputFile = inputFile
	}
	if outputFile != "" {
		cfg.OutputFile = outputFile
	}

	conv := converter.New(cfg)
	conv.SetLogger(converter.NewStdLogger(verbose))
	conv.SetDryRun(dryRun)

	result := conv.Run()
	if !result.Success {
		return result.Error
	}

	fmt.Println("\n=== Generation Complete ===")
	fmt.Printf("Rows read:       %d\n", result.Stats.RowsRead)
	fmt.Printf("Records written: %d\n", result.Stats.RecordsWritten)
	fmt.Printf("Rows skipped:    %d\n", result.Stats.RowsSkipped)
	fmt.Printf("Warnings:        %d\n", result.Stats.Warnings)
	fmt.Printf("Time elapsed:    %s\n", result.Stats.ProcessingTime)
	if result.OutputFile != "" {
		fmt.Printf("Output file:     %s\n", result.OutputFile)
	}

	return nil
}
