package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadboard/shared/api"
	"github.com/itchan-dev/threadboard/shared/domain"
	"github.com/itchan-dev/threadboard/shared/utils"
)

// GetThreads lists the most recently bumped threads of a board.
func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")
	limit, err := optionalIntQuery(r, "limit")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	threads, err := h.thread.Recent(board, limit)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.ThreadListResponse(threads))
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(board, body.Text, body.DeletePassword)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.ThreadResponse{ThreadView: thread})
}

func (h *Handler) ReportThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.ReportThreadRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Report(board, domain.ThreadId(body.ThreadId)); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, api.MessageReported)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	board := chi.URLParam(r, "board")

	var body api.DeleteThreadRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Delete(board, domain.ThreadId(body.ThreadId), body.DeletePassword); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, api.MessageSuccess)
}
