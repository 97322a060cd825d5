package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// asYAML prints the whole effective configuration instead of the tables.
var asYAML bool

// mappingsCmd prints the active mapping tables in the order they are applied.
var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Show the active label to code mappings",
	Long: `Show the active label to code mappings in the order they are applied.

With --yaml the effective configuration is printed in config file format,
which is a convenient starting point for a custom migrator.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if asYAML {
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			_, err = out.Write(data)
			return err
		}

		for i, m := range cfg.Mappings {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "[%s]\n", m.Name)
			for _, e := range m.Entries {
				fmt.Fprintf(out, "  %s  ->  %s\n", e.Key, e.Value)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingsCmd)
	mappingsCmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the effective configuration as YAML")
}
