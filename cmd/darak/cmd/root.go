package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"darak/cmd/darak/cmd/types"
	"darak/internal/app/journal"
	"darak/internal/config"
	"darak/internal/utils/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
	app *journal.App
)

var rootCmd = &cobra.Command{
	Use:   "darak",
	Short: "Darak - a local-first personal journal",
	Long: `Darak keeps a versioned journal of records and ticket stubs on this
device, with a small user directory for sharing entries between friends.

All data lives in a single database file under the data directory; no
network is required.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log = logger.New(cfg.Env)

	app = journal.New(cfg, log)
	if err := app.Init(cmd.Context()); err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.AppKey, app))
	return nil
}
