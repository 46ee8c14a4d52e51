package backup

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "backup-export",
		Method:      http.MethodGet,
		Path:        "/api/v1/backup",
		Summary:     "Export everything as one bundle",
		Description: "Dumps all records, tickets and flat collections regardless of visibility.",
		Tags:        []string{"backup"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) importOp() huma.Operation {
	return huma.Operation{
		OperationID: "backup-import",
		Method:      http.MethodPost,
		Path:        "/api/v1/backup",
		Summary:     "Restore a bundle",
		Description: "Records and tickets merge by id; flat collections are replaced.",
		Tags:        []string{"backup"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
