package record

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"darak/internal/app/api/http/middleware/auth"
	"darak/internal/domain/record"
	"darak/internal/domain/user"
)

type Handler struct {
	service    record.Servicer
	users      user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service record.Servicer, users user.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		users:      users,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.saveOp(), h.save)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.deleteOp(), h.delete)
}

// viewer builds the visibility identity of the authenticated caller.
func (h *Handler) viewer(ctx context.Context) (*record.Viewer, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.users.Get(ctx, userID)
	if err != nil {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	return &record.Viewer{ID: u.ID, Friends: u.Friends}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	viewer, err := h.viewer(ctx)
	if err != nil {
		return nil, err
	}

	var records []record.Record
	if input.Date != "" {
		all, err := h.service.ListByDate(ctx, input.Date)
		if err != nil {
			return &listOutput{Body: listResponse{Status: "Error", Error: err.Error()}}, nil
		}
		records = record.Visible(viewer, all)
	} else {
		records, err = h.service.Refresh(ctx, viewer)
		if err != nil {
			return &listOutput{Body: listResponse{Status: "Error", Error: err.Error()}}, nil
		}
	}

	if records == nil {
		records = []record.Record{}
	}
	return &listOutput{
		Body: listResponse{Records: records, Status: "Ok"},
	}, nil
}

func (h *Handler) save(ctx context.Context, input *saveInput) (*saveOutput, error) {
	viewer, err := h.viewer(ctx)
	if err != nil {
		return nil, err
	}

	rec := input.Body
	id, err := h.service.Save(ctx, &rec, viewer)
	if err != nil {
		return &saveOutput{
			Body: saveResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &saveOutput{
		Body: saveResponse{ID: id, Status: "Ok"},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	viewer, err := h.viewer(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return &findOutput{
			Body: findResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	// A single lookup honors the same visibility rules as the list.
	if visible := record.Visible(viewer, []record.Record{*rec}); len(visible) == 0 {
		return &findOutput{
			Body: findResponse{Status: "Error", Error: record.ErrNotFound.Error()},
		}, nil
	}

	return &findOutput{
		Body: findResponse{Record: rec, Status: "Ok"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if _, err := h.viewer(ctx); err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, input.ID); err != nil {
		return &deleteOutput{
			Body: deleteResponse{Status: "Error", Error: err.Error()},
		}, nil
	}

	return &deleteOutput{
		Body: deleteResponse{Status: "Ok"},
	}, nil
}
