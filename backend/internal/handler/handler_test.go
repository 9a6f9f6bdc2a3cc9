package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/threadboard/shared/domain"
)

// --- Mocks ---

type MockThreadService struct {
	MockCreate func(board domain.BoardName, text domain.PostText, password domain.Password) (domain.ThreadView, error)
	MockRecent func(board domain.BoardName, limit int) ([]domain.ThreadView, error)
	MockGet    func(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error)
	MockReport func(board domain.BoardName, id domain.ThreadId) error
	MockDelete func(board domain.BoardName, id domain.ThreadId, password domain.Password) error
}

func (m *MockThreadService) Create(board domain.BoardName, text domain.PostText, password domain.Password) (domain.ThreadView, error) {
	if m.MockCreate != nil {
		return m.MockCreate(board, text, password)
	}
	return domain.ThreadView{Id: 1, Board: board, Text: text, Replies: []domain.ReplyView{}}, nil
}

func (m *MockThreadService) Recent(board domain.BoardName, limit int) ([]domain.ThreadView, error) {
	if m.MockRecent != nil {
		return m.MockRecent(board, limit)
	}
	return []domain.ThreadView{}, nil
}

func (m *MockThreadService) Get(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error) {
	if m.MockGet != nil {
		return m.MockGet(board, id)
	}
	return domain.ThreadView{Id: id, Board: board, Replies: []domain.ReplyView{}}, nil
}

func (m *MockThreadService) Report(board domain.BoardName, id domain.ThreadId) error {
	if m.MockReport != nil {
		return m.MockReport(board, id)
	}
	return nil
}

func (m *MockThreadService) Delete(board domain.BoardName, id domain.ThreadId, password domain.Password) error {
	if m.MockDelete != nil {
		return m.MockDelete(board, id, password)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(board domain.BoardName, threadId domain.ThreadId, text domain.PostText, password domain.Password) (domain.ReplyView, error)
	MockReport func(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error
	MockDelete func(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, password domain.Password) error
}

func (m *MockReplyService) Create(board domain.BoardName, threadId domain.ThreadId, text domain.PostText, password domain.Password) (domain.ReplyView, error) {
	if m.MockCreate != nil {
		return m.MockCreate(board, threadId, text, password)
	}
	return domain.ReplyView{Id: 1, ThreadId: threadId, Text: text}, nil
}

func (m *MockReplyService) Report(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	if m.MockReport != nil {
		return m.MockReport(board, threadId, replyId)
	}
	return nil
}

func (m *MockReplyService) Delete(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, password domain.Password) error {
	if m.MockDelete != nil {
		return m.MockDelete(board, threadId, replyId, password)
	}
	return nil
}

// --- Helpers ---

func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/threads/{board}", h.GetThreads)
	r.Post("/threads/{board}", h.CreateThread)
	r.Put("/threads/{board}", h.ReportThread)
	r.Delete("/threads/{board}", h.DeleteThread)
	r.Get("/replies/{board}", h.GetReplies)
	r.Post("/replies/{board}", h.CreateReply)
	r.Put("/replies/{board}", h.ReportReply)
	r.Delete("/replies/{board}", h.DeleteReply)
	r.Get("/health", h.Health)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func doForm(t *testing.T, router http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
