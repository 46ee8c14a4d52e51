package ticket

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "tickets-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/tickets",
		Summary:     "List ticket stubs",
		Tags:        []string{"tickets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) saveOp() huma.Operation {
	return huma.Operation{
		OperationID: "tickets-save",
		Method:      http.MethodPost,
		Path:        "/api/v1/tickets",
		Summary:     "Create or update a ticket stub",
		Description: "Upserts by id. Missing id, creation time and display rotation are filled in.",
		Tags:        []string{"tickets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "tickets-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/tickets/{id}",
		Summary:     "Delete a ticket stub",
		Tags:        []string{"tickets"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
