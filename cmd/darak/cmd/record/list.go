package record

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/domain/record"
)

var (
	listDate   string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible records",
	Long: `Shows every record you may observe: your own, unowned legacy
entries, and entries shared with you.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		records, err := app.VisibleRecords(cmd.Context())
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}

		if listDate != "" {
			filtered := records[:0]
			for _, rec := range records {
				if rec.Date == listDate {
					filtered = append(filtered, rec)
				}
			}
			records = filtered
		}

		switch listFormat {
		case "json":
			return printRecordsJSON(records)
		default:
			return printRecordsTable(records)
		}
	},
}

func printRecordsJSON(records []record.Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func printRecordsTable(records []record.Record) error {
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tCATEGORY\tOWNER\tCREATED")
	for _, rec := range records {
		owner := rec.OwnerID
		if owner == "" {
			owner = "-"
		}
		created := time.UnixMilli(rec.ID).Format("2006-01-02 15:04")
		fmt.Fprintln(w, strconv.FormatInt(rec.ID, 10)+"\t"+rec.Date+"\t"+rec.Title+"\t"+
			rec.Category+"\t"+owner+"\t"+created)
	}
	return w.Flush()
}

func init() {
	ListCmd.Flags().StringVarP(&listDate, "date", "d", "", "only records for this day")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format: table, json")
}
