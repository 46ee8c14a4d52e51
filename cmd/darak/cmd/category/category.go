package category

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var CategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage custom record categories",
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		if err := app.Prefs.AddCategory(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("add category: %w", err)
		}

		color.Green("Category %q added", args[0])
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		cats, err := app.Prefs.Categories(cmd.Context())
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		if len(cats) == 0 {
			fmt.Println("No custom categories")
			return nil
		}
		for _, c := range cats {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	CategoryCmd.AddCommand(addCmd)
	CategoryCmd.AddCommand(listCmd)
}
