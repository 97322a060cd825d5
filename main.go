// =============================================================================
// Unit Resource Enum Migrator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Unit Resource Enum Migrator CLI. It
// delegates command execution to the cmd package.
//
// USAGE:
//   migrator migrate   - Rewrite enum labels to codes in the units directory
//   migrator validate  - Validate the configuration without touching files
//   migrator mappings  - Show the active label to code tables
//   migrator version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/               : CLI command definitions (Cobra)
//   - internal/config    : YAML + environment configuration
//   - internal/enummap   : Mapping tables and exact-line matching
//   - internal/migrator  : Discovery, per-file migration and the run loop
//   - internal/report    : Summary log and XLSX report
//   - pkg/utils          : File discovery and encoded file I/O
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/tres-enum-migrator/cmd"
)

func main() {
	cmd.Execute()
}
