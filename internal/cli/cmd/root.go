// Package cmd provides Cobra CLI commands for collapsepane.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/collapsepane/internal/cli"
	"github.com/bnema/collapsepane/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "collapsepane",
		Short: "A resizable, collapsible two-pane split for terminal UIs",
		Long: `collapsepane - a draggable split layout for Bubble Tea programs.

Two panels sit side by side or stacked with a separator between them.
Drag the separator to resize, press its button to collapse one side,
and configure snap points that pull the separator in while dragging.

Use 'collapsepane demo' to try the component, or 'collapsepane template'
and 'collapsepane drag' to inspect the layout calculations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default: XDG config dir)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
