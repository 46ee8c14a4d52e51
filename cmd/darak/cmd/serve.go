package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"darak/internal/app/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the journal over local HTTP",
	Long: `Exposes the data layer on a local address so other processes on
this device (the UI, scripts) can talk to it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		addr := cfg.ServeAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: api.New(app, log),
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("serving", "addr", addr)
			errCh <- srv.ListenAndServe()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
		case sig := <-sigCh:
			log.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}

		return app.Close()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides SERVE_ADDRESS)")
}
