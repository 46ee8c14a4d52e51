package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout: %w", err)
		}

		color.Green("Logged out")
		return nil
	},
}
