package cmd

import (
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click <file> <value>...",
	Short: "Click options by value, in order",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, args[0], func(s *session) error {
			for _, value := range args[1:] {
				n, err := s.optionNode(value)
				if err != nil {
					return err
				}
				s.doc.Click(n)
				s.flush()
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(clickCmd)
}
