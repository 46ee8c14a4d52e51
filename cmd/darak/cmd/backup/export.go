package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var exportOut string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a backup bundle to a file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		b, err := app.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("darak-backup-%s.json", time.Now().Format("2006-01-02"))
		}

		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			return fmt.Errorf("encode bundle: %w", err)
		}
		if err := os.WriteFile(out, data, 0600); err != nil {
			return fmt.Errorf("write bundle: %w", err)
		}

		color.Green("Exported %d records and %d tickets to %s", len(b.Records), len(b.Tickets), out)
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default darak-backup-<date>.json)")
}
