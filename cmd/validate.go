package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd checks the configuration without touching any file. Loading
// already validates; this command only reports the result.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and mapping tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configuration is valid")
		fmt.Fprintf(out, "  Units dir: %s\n", cfg.UnitsDir)
		fmt.Fprintf(out, "  Extension: %s\n", cfg.Extension)
		fmt.Fprintf(out, "  Encoding:  %s\n", cfg.Encoding)
		for _, m := range cfg.Mappings {
			fmt.Fprintf(out, "  Mapping %q: %d entries\n", m.Name, len(m.Entries))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
