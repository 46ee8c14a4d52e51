package friend

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/domain/user"
)

var AddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add an account to your friend list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		me, err := app.CurrentUser(cmd.Context())
		if err != nil {
			return user.ErrNotAuthenticated
		}

		u, err := app.Users.AddFriend(cmd.Context(), me.ID, args[0])
		if err != nil {
			return fmt.Errorf("add friend: %w", err)
		}

		color.Green("Added %q (%d friends total)", args[0], len(u.Friends))
		return nil
	},
}
