package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/duosh/duosh/core/interp"
)

// builtinsCmd lists the interpreter's builtin command table.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands the interpreter runs without spawning a process.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 8, 8, 4, ' ', 0)
		defer tw.Flush()

		for _, b := range interp.Builtins() {
			fmt.Fprintf(tw, "%s\t%s\n", b.Name, b.Short)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
