package cmd

import (
	"strings"

	"github.com/marcus/optsel/internal/dom"
	"github.com/spf13/cobra"
)

var keyAliases = map[string]string{
	"left":  dom.KeyArrowLeft,
	"right": dom.KeyArrowRight,
	"up":    dom.KeyArrowUp,
	"down":  dom.KeyArrowDown,
	"enter": dom.KeyEnter,
	"space": dom.KeySpace,
}

// keyName maps a short alias to its DOM key name. Unknown names pass through.
func keyName(s string) string {
	if k, ok := keyAliases[strings.ToLower(s)]; ok {
		return k
	}
	return s
}

var keysCmd = &cobra.Command{
	Use:   "keys <file> <key>...",
	Short: "Press keys with focus inside the widget",
	Long: `Focus the widget's tabbable option and press keys in order. Keys are
left, right, up, down (or their DOM names such as ArrowDown). Arrow keys only
have an effect when keyboard-select-mode is focus or select.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, args[0], func(s *session) error {
			s.doc.FocusWithin(s.widget.Element())
			for _, k := range args[1:] {
				s.doc.KeyDown(keyName(k))
				s.flush()
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
