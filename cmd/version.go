// =============================================================================
// Unit Resource Enum Migrator - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   migrator version
//
// OUTPUT:
//   Unit Resource Enum Migrator
//   Version:    1.0.0
//   Build Date: 2026-10-16
//   Go Version: go1.24.11
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are set at build time using ldflags:
//   go build -ldflags "-X 'github.com/ginjaninja78/tres-enum-migrator/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// versionCmd represents the 'version' command. It does not need a config.
var versionCmd = &cobra.Command{
	Use:              "version",
	Short:            "Display the application version",
	Long:             `Display the application version, build date, and Go runtime version.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Unit Resource Enum Migrator")
		fmt.Fprintf(out, "Version:    %s\n", Version)
		fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
