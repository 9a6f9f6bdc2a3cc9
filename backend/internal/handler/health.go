package handler

import (
	"net/http"
)

// Health is a liveness probe endpoint.
// The store lives in process memory, so being able to answer is being ready.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
