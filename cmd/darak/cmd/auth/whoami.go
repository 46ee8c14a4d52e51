package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/domain/user"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		u, err := app.CurrentUser(cmd.Context())
		if err != nil {
			if errors.Is(err, user.ErrNotAuthenticated) {
				fmt.Println("Not logged in")
				return nil
			}
			return err
		}

		fmt.Printf("Logged in as %q (%d friends)\n", u.ID, len(u.Friends))
		return nil
	},
}
