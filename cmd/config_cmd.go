package cmd

import (
	"fmt"
	"strings"

	"github.com/marcus/optsel/internal/config"
	"github.com/marcus/optsel/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change .optsel/config.json",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a config value (" + strings.Join(config.Keys, ", ") + ")",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.Get(getBaseDir(), args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}
		fmt.Fprintln(output.Stdout, v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(getBaseDir(), args[0], args[1]); err != nil {
			output.Error("%v", err)
			return err
		}
		fmt.Fprintf(output.Stdout, "%s = %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
