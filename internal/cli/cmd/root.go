// Package cmd provides Cobra CLI commands for plume.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plumekit/plume/internal/cli"
	"github.com/plumekit/plume/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "plume",
		Short: "A distraction-free writing assistant",
		Long: `Plume - a distraction-free writing assistant for novelists.

The graphical editor keeps every text surface at a single, synchronized
zoom level. These subcommands inspect and adjust the persisted editor
settings from the terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
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

// SetBuildInfo stores build information injected from main.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
