package settings

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/domain/prefs"
)

var (
	apiKey string
	cx     string
)

var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage stored search credentials",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Store search API credentials",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Prefs.SaveSettings(cmd.Context(), prefs.Settings{
			APIKey: apiKey,
			CX:     cx,
		}); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}

		color.Green("Settings saved")
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored credentials",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		cfg, err := app.Prefs.Settings(cmd.Context())
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		if cfg == (prefs.Settings{}) {
			fmt.Println("No settings stored")
			return nil
		}
		fmt.Printf("api key: %s\ncx:      %s\n", mask(cfg.APIKey), cfg.CX)
		return nil
	},
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}

func init() {
	setCmd.Flags().StringVar(&apiKey, "api-key", "", "search API key")
	setCmd.Flags().StringVar(&cx, "cx", "", "search engine id")

	SettingsCmd.AddCommand(setCmd)
	SettingsCmd.AddCommand(showCmd)
}
