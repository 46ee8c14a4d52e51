package bucket

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
)

var BucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage the bucket list",
}

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a bucket list item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		item, err := app.Prefs.AddBucketItem(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("add bucket item: %w", err)
		}

		color.Green("Added item %d", item.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List bucket items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		items, err := app.Prefs.BucketList(cmd.Context())
		if err != nil {
			return fmt.Errorf("list bucket items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("Bucket list is empty")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDONE\tTEXT")
		for _, item := range items {
			done := " "
			if item.Done {
				done = "x"
			}
			fmt.Fprintln(w, strconv.FormatInt(item.ID, 10)+"\t["+done+"]\t"+item.Text)
		}
		return w.Flush()
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle an item's done state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}

		if err := app.Prefs.ToggleBucketItem(cmd.Context(), id); err != nil {
			return fmt.Errorf("toggle bucket item: %w", err)
		}
		return nil
	},
}

func init() {
	BucketCmd.AddCommand(addCmd)
	BucketCmd.AddCommand(listCmd)
	BucketCmd.AddCommand(toggleCmd)
}
