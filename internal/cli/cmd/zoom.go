package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plumekit/plume/internal/domain/entity"
)

var zoomCmd = &cobra.Command{
	Use:   "zoom",
	Short: "Show the saved editor zoom level",
	Long:  `Display the persisted editor zoom level and the configured default.`,
	RunE:  runZoomShow,
}

var zoomSetCmd = &cobra.Command{
	Use:   "set <percent>",
	Short: "Set the editor zoom level",
	Long: fmt.Sprintf(`Persist a new editor zoom level.

The value is a percentage between %d and %d; out-of-range values are clamped.
Running editors pick the change up on their next start.`, entity.ZoomMin, entity.ZoomMax),
	Args: cobra.ExactArgs(1),
	RunE: runZoomSet,
}

var zoomResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the editor zoom level to the default",
	RunE:  runZoomReset,
}

func init() {
	rootCmd.AddCommand(zoomCmd)
	zoomCmd.AddCommand(zoomSetCmd)
	zoomCmd.AddCommand(zoomResetCmd)
}

func runZoomShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	saved, err := app.ZoomUC.SavedZoom(app.Ctx())
	if err != nil {
		return fmt.Errorf("read saved zoom: %w", err)
	}

	theme := app.Theme
	fmt.Println(theme.Title.Render("Editor zoom"))
	fmt.Printf("  %s %s\n",
		theme.Subtle.Render("current:"),
		theme.Value.Render(fmt.Sprintf("%d%%", saved)))
	fmt.Printf("  %s %s\n",
		theme.Subtle.Render("default:"),
		theme.Value.Render(fmt.Sprintf("%d%%", app.ZoomUC.DefaultZoom())))
	return nil
}

func runZoomSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	requested, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid zoom percentage %q: %w", args[0], err)
	}

	clamped := entity.ClampZoom(requested)
	if err := app.ZoomUC.SaveZoom(app.Ctx(), requested); err != nil {
		return fmt.Errorf("save zoom: %w", err)
	}

	if clamped != requested {
		fmt.Println(app.Theme.Subtle.Render(
			fmt.Sprintf("%d%% is out of range, clamped to %d%%", requested, clamped)))
	}
	fmt.Println(app.Theme.SuccessStyle.Render(
		fmt.Sprintf("Editor zoom set to %d%%", clamped)))
	return nil
}

func runZoomReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	def := app.ZoomUC.DefaultZoom()
	if err := app.ZoomUC.SaveZoom(app.Ctx(), def); err != nil {
		return fmt.Errorf("reset zoom: %w", err)
	}

	fmt.Println(app.Theme.SuccessStyle.Render(
		fmt.Sprintf("Editor zoom reset to %d%%", def)))
	return nil
}
