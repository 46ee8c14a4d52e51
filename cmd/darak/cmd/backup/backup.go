package backup

import (
	"github.com/spf13/cobra"
)

// BackupCmd groups the export/import/recover flows.
var BackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and restore the whole journal",
	Long: `A backup bundle contains every record, ticket and flat collection
on the device, regardless of who owns it.`,
}
