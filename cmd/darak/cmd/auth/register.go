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

var RegisterCmd = &cobra.Command{
	Use:   "register [id]",
	Short: "Create a new account",
	Long: `Creates an account in the on-device directory and logs it in.
The id must be unique; records you create afterwards are owned by it.`,
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

		fmt.Print("Repeat password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(confirm) {
			return fmt.Errorf("passwords do not match")
		}

		u, err := app.Register(cmd.Context(), id, string(password))
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}

		color.Green("Account %q created and logged in", u.ID)
		return nil
	},
}
