package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadboard/shared/api"
	"github.com/itchan-dev/threadboard/shared/domain"
	"github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/utils"
)

// GetReplies returns one thread with every reply.
func (h *Handler) GetReplies(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	threadId, err := optionalIntQuery(r, "thread_id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if threadId == 0 {
		utils.WriteErrorAndStatusCode(w, errors.Validation("Required fields missing: thread_id"))
		return
	}
	if threadId < 0 {
		utils.WriteErrorAndStatusCode(w, errors.Validation("Invalid fields: thread_id"))
		return
	}

	thread, err := h.thread.Get(board, domain.ThreadId(threadId))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ThreadResponse{ThreadView: thread})
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	reply, err := h.reply.Create(board, domain.ThreadId(body.ThreadId), body.Text, body.DeletePassword)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.ReplyResponse{ReplyView: reply})
}

func (h *Handler) ReportReply(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.ReportReplyRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.reply.Report(board, domain.ThreadId(body.ThreadId), domain.ReplyId(body.ReplyId)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, api.MessageReported)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.DeleteReplyRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	err := h.reply.Delete(board, domain.ThreadId(body.ThreadId), domain.ReplyId(body.ReplyId), body.DeletePassword)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, api.MessageSuccess)
}
