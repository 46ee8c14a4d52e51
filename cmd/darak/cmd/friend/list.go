package friend

import (
	"fmt"

	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/domain/user"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your friends",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		me, err := app.CurrentUser(cmd.Context())
		if err != nil {
			return user.ErrNotAuthenticated
		}

		friends, err := app.Users.Friends(cmd.Context(), me.ID)
		if err != nil {
			return fmt.Errorf("list friends: %w", err)
		}

		if len(friends) == 0 {
			fmt.Println("No friends yet")
			return nil
		}
		for _, f := range friends {
			fmt.Println(f)
		}
		return nil
	},
}
