package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/marcus/optsel/internal/eventlog"
	"github.com/marcus/optsel/internal/output"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List select events recorded in the event log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := sessionOptionsFromFlags(cmd).EventLog
		if path == "" {
			err := errors.New("no event log configured: pass --event-log or set event_log")
			reportError(cmd, "no_event_log", err)
			return err
		}

		lg, err := eventlog.Open(path)
		if err != nil {
			reportError(cmd, "open_failed", err)
			return err
		}
		defer lg.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := lg.List(cmd.Context(), limit)
		if err != nil {
			reportError(cmd, "list_failed", err)
			return err
		}

		if jsonOutput(cmd) {
			if entries == nil {
				entries = []eventlog.Entry{}
			}
			return output.JSON(entries)
		}
		if len(entries) == 0 {
			fmt.Fprintf(output.Stdout, "no events in %s\n", filepath.Base(path))
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(output.Stdout, "%s  %s  %s  %s %s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Source, e.Target, e.Event, string(e.Detail))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show (0 = all)")
}
