package ticket

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a ticket stub",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ticket id %q", args[0])
		}

		if err := app.Tickets.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete ticket: %w", err)
		}

		color.Green("Ticket %d deleted", id)
		return nil
	},
}
