package cmd

import (
	"github.com/marcus/optsel/internal/selector"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select <file> [value...]",
	Short: "Push an external selection, as a bound selected attribute would",
	Long: `Replace the widget selection from outside. Values are matched against
option values; single-select widgets keep only the first. With no values every
option is deselected. --none pushes an absent selection, --raw passes an
attribute string (JSON or plain) through the attribute mutation path.

No select event is fired by this command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		none, _ := cmd.Flags().GetBool("none")
		raw, _ := cmd.Flags().GetString("raw")
		values := args[1:]

		return withSession(cmd, args[0], func(s *session) error {
			switch {
			case none:
				s.widget.SetSelected(nil)
			case cmd.Flags().Changed("raw"):
				s.widget.AttributeChanged(selector.AttrSelected, raw)
			default:
				s.widget.SetSelected(values)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)

	selectCmd.Flags().Bool("none", false, "Push an absent selection (clears everything)")
	selectCmd.Flags().String("raw", "", `Raw selected attribute value, e.g. '["a","b"]'`)
}
