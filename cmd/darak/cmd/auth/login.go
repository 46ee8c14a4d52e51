package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var LoginCmd = &cobra.Command{
	Use:   "login [id]",
	Short: "Log in to an existing account",
	Long: `Authenticates against the on-device directory. The session lasts
until an explicit logout; there is no expiry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		if id == "" {
			fmt.Print("Account id: ")
			if _, err := fmt.Scanln(&id); err != nil {
				return fmt.Errorf("read account id: %w", err)
			}
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		u, err := app.Login(cmd.Context(), id, string(password))
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		color.Green("Logged in as %q", u.ID)
		return nil
	},
}
