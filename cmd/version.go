package cmd

import (
	"fmt"

	"github.com/marcus/optsel/internal/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the optsel version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(output.Stdout, "optsel %s\n", v)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
