package backup

import (
	"darak/internal/domain/backup"
)

type exportOutput struct {
	Body backup.Bundle
}

type importInput struct {
	Body backup.Bundle
}

type importOutput struct {
	Body importResponse
}

type importResponse struct {
	Records int    `json:"records"`
	Tickets int    `json:"tickets"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}
