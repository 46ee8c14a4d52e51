package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// StorageStatus reports whether the on-device store came up.
type StorageStatus interface {
	Err() error
}

type Handler struct {
	storage    StorageStatus
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage StorageStatus, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	storage := "ready"
	if err := h.storage.Err(); err != nil {
		storage = err.Error()
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: storage,
		},
	}, nil
}
