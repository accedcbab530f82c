package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plumekit/plume/internal/domain/build"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	theme := app.Theme
	info := app.BuildInfo

	fmt.Println(theme.Badge.Render("plume"))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("version:"), theme.Value.Render(info.Version))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("commit:"), theme.Value.Render(info.Commit))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("built:"), theme.Value.Render(info.BuildDate))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("go:"), theme.Value.Render(info.GoVersion))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("repo:"), theme.Value.Render(build.RepoURL()))
	return nil
}
