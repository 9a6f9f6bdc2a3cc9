package api

import (
	"github.com/itchan-dev/threadboard/shared/domain"
)

// Request DTOs

type CreateThreadRequest struct {
	Text           string `json:"text" validate:"required"`
	DeletePassword string `json:"delete_password" validate:"required"`
}

type ReportThreadRequest struct {
	ThreadId ID `json:"thread_id" validate:"required,gt=0"`
}

type DeleteThreadRequest struct {
	ThreadId       ID     `json:"thread_id" validate:"required,gt=0"`
	DeletePassword string `json:"delete_password" validate:"required"`
}

// Response DTOs

// ThreadResponse wraps a redacted thread
type ThreadResponse struct {
	domain.ThreadView
}

type ThreadListResponse []domain.ThreadView
