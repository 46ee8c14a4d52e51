package record

import (
	"darak/internal/domain/record"
)

type listInput struct {
	Date string `query:"date" example:"2025-11-02" doc:"Only records for this day"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Records []record.Record `json:"records"`
	Status  string          `json:"status"`
	Error   string          `json:"error,omitempty"`
}

type saveInput struct {
	Body record.Record
}

type saveOutput struct {
	Body saveResponse
}

type saveResponse struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type findInput struct {
	ID int64 `path:"id" example:"1717171717171" doc:"Record id (creation timestamp in ms)"`
}

type findOutput struct {
	Body findResponse
}

type findResponse struct {
	Record *record.Record `json:"record"`
	Status string         `json:"status"`
	Error  string         `json:"error,omitempty"`
}

type deleteInput struct {
	ID int64 `path:"id" example:"1717171717171" doc:"Record id"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
