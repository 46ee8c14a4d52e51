package ticket

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored ticket stubs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		tickets, err := app.Tickets.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list tickets: %w", err)
		}

		if len(tickets) == 0 {
			fmt.Println("No tickets found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROTATION\tCREATED")
		for _, t := range tickets {
			fmt.Fprintln(w, strconv.FormatInt(t.ID, 10)+"\t"+
				strconv.FormatFloat(t.Rotation, 'f', 1, 64)+"\t"+
				t.CreatedAt.Format(time.DateTime))
		}
		return w.Flush()
	},
}
