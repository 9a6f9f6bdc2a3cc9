package service

import (
	"sync"

	"github.com/itchan-dev/threadboard/shared/domain"
)

// --- Mocks ---

// MockStorage mocks both ThreadStorage and ReplyStorage.
type MockStorage struct {
	createThreadFunc       func(creationData domain.ThreadCreationData) (domain.Thread, error)
	recentThreadsFunc      func(board domain.BoardName, limit, replyLimit int) ([]domain.ThreadView, error)
	getThreadFunc          func(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error)
	reportThreadFunc       func(board domain.BoardName, id domain.ThreadId) error
	threadPasswordHashFunc func(board domain.BoardName, id domain.ThreadId) (domain.PasswordHash, error)
	deleteThreadFunc       func(board domain.BoardName, id domain.ThreadId) error

	createReplyFunc       func(creationData domain.ReplyCreationData) (domain.Reply, error)
	reportReplyFunc       func(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error
	replyPasswordHashFunc func(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) (domain.PasswordHash, error)
	deleteReplyFunc       func(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error

	mu                 sync.Mutex
	createCalled       bool
	deleteThreadCalled bool
	deleteReplyCalled  bool
}

func (m *MockStorage) called(flag *bool) {
	m.mu.Lock()
	*flag = true
	m.mu.Unlock()
}

func (m *MockStorage) wasCalled(flag *bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *flag
}

func (m *MockStorage) CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error) {
	m.called(&m.createCalled)
	if m.createThreadFunc != nil {
		return m.createThreadFunc(creationData)
	}
	return domain.Thread{Id: 1, Board: creationData.Board, Text: creationData.Text, PasswordHash: creationData.PasswordHash}, nil
}

func (m *MockStorage) RecentThreads(board domain.BoardName, limit, replyLimit int) ([]domain.ThreadView, error) {
	if m.recentThreadsFunc != nil {
		return m.recentThreadsFunc(board, limit, replyLimit)
	}
	return []domain.ThreadView{}, nil
}

func (m *MockStorage) GetThread(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(board, id)
	}
	return domain.ThreadView{Id: id, Board: board}, nil
}

func (m *MockStorage) ReportThread(board domain.BoardName, id domain.ThreadId) error {
	if m.reportThreadFunc != nil {
		return m.reportThreadFunc(board, id)
	}
	return nil
}

func (m *MockStorage) ThreadPasswordHash(board domain.BoardName, id domain.ThreadId) (domain.PasswordHash, error) {
	if m.threadPasswordHashFunc != nil {
		return m.threadPasswordHashFunc(board, id)
	}
	return "", nil
}

func (m *MockStorage) DeleteThread(board domain.BoardName, id domain.ThreadId) error {
	m.called(&m.deleteThreadCalled)
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(board, id)
	}
	return nil
}

func (m *MockStorage) CreateReply(creationData domain.ReplyCreationData) (domain.Reply, error) {
	m.called(&m.createCalled)
	if m.createReplyFunc != nil {
		return m.createReplyFunc(creationData)
	}
	return domain.Reply{Id: 1, Text: creationData.Text, PasswordHash: creationData.PasswordHash}, nil
}

func (m *MockStorage) ReportReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	if m.reportReplyFunc != nil {
		return m.reportReplyFunc(board, threadId, replyId)
	}
	return nil
}

func (m *MockStorage) ReplyPasswordHash(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) (domain.PasswordHash, error) {
	if m.replyPasswordHashFunc != nil {
		return m.replyPasswordHashFunc(board, threadId, replyId)
	}
	return "", nil
}

func (m *MockStorage) DeleteReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	m.called(&m.deleteReplyCalled)
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(board, threadId, replyId)
	}
	return nil
}

// MockValidator mocks PostValidator, passing text through unchanged by default.
type MockValidator struct {
	nameFunc     func(board domain.BoardName) error
	textFunc     func(text domain.PostText) (domain.PostText, error)
	passwordFunc func(password domain.Password) error
}

func (m *MockValidator) Name(board domain.BoardName) error {
	if m.nameFunc != nil {
		return m.nameFunc(board)
	}
	return nil
}

func (m *MockValidator) Text(text domain.PostText) (domain.PostText, error) {
	if m.textFunc != nil {
		return m.textFunc(text)
	}
	return text, nil
}

func (m *MockValidator) Password(password domain.Password) error {
	if m.passwordFunc != nil {
		return m.passwordFunc(password)
	}
	return nil
}
