package logger

import (
	"context"
	"io"
	"os"

	"golang.org/x/exp/slog"

	"darak/internal/config"
)

// New returns a logger tuned for the given environment: human-readable
// debug output locally, JSON elsewhere.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stderr)
}

func NewWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(newPrettyHandler(w, slog.LevelDebug))
	}
}

// prettyHandler is a thin wrapper over the text handler used for local runs.
type prettyHandler struct {
	slog.Handler
}

func newPrettyHandler(w io.Writer, level slog.Level) *prettyHandler {
	return &prettyHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.Handler.Handle(ctx, r)
}
