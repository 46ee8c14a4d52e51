package record

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/domain/record"
)

var (
	createDate     string
	createTitle    string
	createCategory string
	createLocation string
	createYear     string
	createRating   string
	createMood     string
	createReview   string
	createYouTube  string
	shareWith      []string
	shareAll       bool
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a journal record",
	Long: `Creates an entry for the given day. When you are logged in the
record is owned by you; use --share or --share-all to make it visible
to other accounts.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.AppKey).(*journal.App)
		if !ok {
			return fmt.Errorf("application is not initialized")
		}

		rec := &record.Record{
			Date:        createDate,
			Title:       createTitle,
			Category:    createCategory,
			Location:    createLocation,
			ReleaseYear: createYear,
			Rating:      createRating,
			Mood:        createMood,
			Review:      createReview,
			YouTube:     createYouTube,
			SharedWith:  shareWith,
		}
		if shareAll {
			rec.SharedWith = []string{record.AllFriends}
		}

		id, err := app.SaveRecord(cmd.Context(), rec)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}

		color.Green("Record %d created", id)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createDate, "date", "d", "", "entry date, YYYY-MM-DD (required)")
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "title")
	CreateCmd.Flags().StringVarP(&createCategory, "category", "c", "", "category")
	CreateCmd.Flags().StringVarP(&createLocation, "location", "l", "", "location")
	CreateCmd.Flags().StringVar(&createYear, "year", "", "release year")
	CreateCmd.Flags().StringVar(&createRating, "rating", "", "rating")
	CreateCmd.Flags().StringVar(&createMood, "mood", "", "mood")
	CreateCmd.Flags().StringVar(&createReview, "review", "", "review text")
	CreateCmd.Flags().StringVar(&createYouTube, "youtube", "", "youtube link")
	CreateCmd.Flags().StringSliceVar(&shareWith, "share", nil, "share with specific accounts")
	CreateCmd.Flags().BoolVar(&shareAll, "share-all", false, "share with everyone who friended you back")

	_ = CreateCmd.MarkFlagRequired("date")
}
