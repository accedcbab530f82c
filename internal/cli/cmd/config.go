package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plumekit/plume/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema for the config file",
	Long:  `Generate config.schema.json next to the config file, for editor completion and validation.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	theme := app.Theme
	cfg := app.Config

	fmt.Println(theme.Title.Render("Configuration"))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("database.path:"), theme.Value.Render(cfg.Database.Path))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("logging.level:"), theme.Value.Render(cfg.Logging.Level))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("logging.format:"), theme.Value.Render(cfg.Logging.Format))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("editor.default_zoom:"), theme.Value.Render(fmt.Sprintf("%d%%", cfg.Editor.DefaultZoom)))
	fmt.Printf("  %s %s\n", theme.Subtle.Render("editor.zoom_step:"), theme.Value.Render(fmt.Sprintf("%d%%", cfg.Editor.ZoomStep)))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := config.GenerateSchemaFile(); err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	configDir, _ := config.GetConfigDir()
	fmt.Println(app.Theme.SuccessStyle.Render("Schema written to " + configDir))
	return nil
}
