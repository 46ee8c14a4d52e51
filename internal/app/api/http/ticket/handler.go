package ticket

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"darak/internal/domain/ticket"
)

type Handler struct {
	service    ticket.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service ticket.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	tickets, err := h.service.List(ctx)
	if err != nil {
		return &listOutput{
			Body: listResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	return &listOutput{
		Body: listResponse{Tickets: tickets, Status: "Ok"},
	}, nil
}

func (h *Handler) save(ctx context.Context, input *saveInput) (*saveOutput, error) {
	t := input.Body
	id, err := h.service.Save(ctx, &t)
	if err != nil {
		return &saveOutput{
			Body: saveResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &saveOutput{
		Body: saveResponse{ID: id, Status: "Ok"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return &deleteOutput{
			Body: deleteResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &deleteOutput{
		Body: deleteResponse{Status: "Ok"},
	}, nil
}
