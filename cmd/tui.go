package cmd

import (
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/optsel/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <file>",
	Short: "Operate the widget interactively in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			err := errors.New("tui requires an interactive terminal")
			reportError(cmd, "not_a_terminal", err)
			return err
		}

		s, err := openSession(cmd.Context(), args[0], sessionOptionsFromFlags(cmd))
		if err != nil {
			reportError(cmd, "build_failed", err)
			return err
		}

		m := tui.New(s.doc, s.widget, filepath.Base(args[0]))
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, runErr := p.Run()
		m.Close()

		if runErr != nil {
			s.close()
			return runErr
		}
		return s.report(cmd)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
