package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/marcus/optsel/internal/config"
	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
	cfg     = &config.Config{}
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "optsel",
	Short: "Drive selectable-option widgets embedded in HTML documents",
	Long: `optsel - build and exercise option selector widgets found in HTML files.

A widget is any element matching the container selector (default
"option-selector") whose descendants carry an "option" attribute. Commands
replay clicks, arrow keys and bound-attribute changes against the widget and
print its resulting state, hidden form inputs and fired select events.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().Bool("json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config, else warn)")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// setupLogging loads the config and installs the default slog logger.
func setupLogging(cmd *cobra.Command) error {
	loaded, err := config.Load(getBaseDir())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})
	slog.SetDefault(slog.New(handler))
	return nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
