package ticket

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/domain/ticket"
)

var SaveCmd = &cobra.Command{
	Use:   "save <image-file>",
	Short: "Store a ticket stub image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		t := &ticket.Ticket{
			Image: base64.StdEncoding.EncodeToString(data),
		}
		id, err := app.Tickets.Save(cmd.Context(), t)
		if err != nil {
			return fmt.Errorf("save ticket: %w", err)
		}

		color.Green("Ticket %d saved (rotation %.1f)", id, t.Rotation)
		return nil
	},
}
