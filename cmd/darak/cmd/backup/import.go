package backup

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var ImportCmd = &cobra.Command{
	Use:   "import <bundle-file>",
	Short: "Restore a backup bundle",
	Long: `Restores a previously exported bundle. Records and tickets merge
into the store by id; categories, the bucket list and settings are
replaced by the bundle's versions.`,
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

		b, err := app.Import(cmd.Context(), data)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		color.Green("Imported %d records and %d tickets", len(b.Records), len(b.Tickets))
		return nil
	},
}
