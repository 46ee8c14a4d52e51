package ticket

import (
	"darak/internal/domain/ticket"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Tickets []ticket.Ticket `json:"tickets"`
	Status  string          `json:"status"`
	Error   string          `json:"error,omitempty"`
}

type saveInput struct {
	Body ticket.Ticket
}

type saveOutput struct {
	Body saveResponse
}

type saveResponse struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type deleteInput struct {
	ID int64 `path:"id" example:"1717171717171" doc:"Ticket id"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
