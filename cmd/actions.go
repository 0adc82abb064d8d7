package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <file> <index>",
	Short: "Toggle the option at an index",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		var force *bool
		if cmd.Flags().Changed("force") {
			v, _ := cmd.Flags().GetBool("force")
			force = &v
		}
		return withSession(cmd, args[0], func(s *session) error {
			s.widget.Toggle(index, force)
			return nil
		})
	},
}

var stepCmd = &cobra.Command{
	Use:   "step <file> [count]",
	Short: "Move the selection by count options, wrapping around",
	Long: `Move the selection count options forward (default 1), wrapping at the
end. Pass --up to move backward instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		count := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid count %q: must be a positive integer", args[1])
			}
			count = n
		}
		up, _ := cmd.Flags().GetBool("up")
		return withSession(cmd, args[0], func(s *session) error {
			if up {
				s.widget.SelectUp(count)
			} else {
				s.widget.SelectDown(count)
			}
			return nil
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <file>",
	Short: "Deselect every option",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, args[0], func(s *session) error {
			s.widget.Clear()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(clearCmd)

	toggleCmd.Flags().Bool("force", false, "Force the resulting state instead of flipping it")
	stepCmd.Flags().Bool("up", false, "Move toward the first option instead of the last")
}
