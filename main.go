// =============================================================================
// lottosql - Main Entry Point
// =============================================================================
//
// This is the main entry point for the lottosql CLI application. It converts
// "Set for Life" lottery draw exports (CSV or XLSX) into a SQL INSERT script
// for the lottery_result table.
//
// USAGE:
//   lottosql generate        - Convert the draw export into a SQL script
//   lottosql validate        - Validate configuration and input without writing
//   lottosql load            - Apply a generated script to a SQLite database
//   lottosql version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/coolrunnings/lottosql/cmd"
)

func main() {
	cmd.Execute()
}
