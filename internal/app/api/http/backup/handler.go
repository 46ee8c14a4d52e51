package backup

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"darak/internal/domain/backup"
)

type Handler struct {
	service    *backup.Service
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service *backup.Service, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.exportOp(), h.export)
	huma.Register(api, h.importOp(), h.importBundle)
}

func (h *Handler) export(ctx context.Context, _ *struct{}) (*exportOutput, error) {
	b, err := h.service.Export(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}
	return &exportOutput{Body: *b}, nil
}

func (h *Handler) importBundle(ctx context.Context, input *importInput) (*importOutput, error) {
	b := input.Body
	if err := h.service.Import(ctx, &b); err != nil {
		return &importOutput{
			Body: importResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &importOutput{
		Body: importResponse{
			Records: len(b.Records),
			Tickets: len(b.Tickets),
			Status:  "Ok",
		},
	}, nil
}
