package api

import (
	"github.com/itchan-dev/threadboard/shared/domain"
)

// Request DTOs

type CreateReplyRequest struct {
	ThreadId       ID     `json:"thread_id" validate:"required,gt=0"`
	Text           string `json:"text" validate:"required"`
	DeletePassword string `json:"delete_password" validate:"required"`
}

type ReportReplyRequest struct {
	ThreadId ID `json:"thread_id" validate:"required,gt=0"`
	ReplyId  ID `json:"reply_id" validate:"required,gt=0"`
}

type DeleteReplyRequest struct {
	ThreadId       ID     `json:"thread_id" validate:"required,gt=0"`
	ReplyId        ID     `json:"reply_id" validate:"required,gt=0"`
	DeletePassword string `json:"delete_password" validate:"required"`
}

// Response DTOs

// ReplyResponse wraps a redacted reply
type ReplyResponse struct {
	domain.ReplyView
}
