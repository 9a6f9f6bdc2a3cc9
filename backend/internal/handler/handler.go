package handler

import (
	"github.com/itchan-dev/threadboard/backend/internal/service"
)

type Handler struct {
	thread service.ThreadService
	reply  service.ReplyService
}

func New(thread service.ThreadService, reply service.ReplyService) *Handler {
	return &Handler{
		thread: thread,
		reply:  reply,
	}
}
