package backup

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var RecoverCmd = &cobra.Command{
	Use:   "recover <bundle-file>",
	Short: "Restore a recovery bundle",
	Long: `Same flow as import, but the bundle is marked as a recovery
payload so the restore shows up as such in the logs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read bundle: %w", err)
		}

		b, err := app.Recover(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("recover: %w", err)
		}

		color.Green("Recovered %d records and %d tickets", len(b.Records), len(b.Tickets))
		return nil
	},
}
