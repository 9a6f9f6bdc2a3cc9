// Package memory is the in-process board store. Nothing survives a restart.
package memory

import (
	"sync"
	"time"

	"github.com/itchan-dev/threadboard/shared/domain"
)

// Storage holds every board, thread and reply behind one lock.
// Reads take the read lock and only ever return copies or views.
type Storage struct {
	mu      sync.RWMutex
	boards  map[domain.BoardName]map[domain.ThreadId]*domain.Thread
	threads int
	replies int

	lastThreadId domain.ThreadId
	lastReplyId  domain.ReplyId

	now func() time.Time
}

type Option func(*Storage)

// WithClock replaces time.Now, used by tests to control bump order.
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		s.now = now
	}
}

func New(opts ...Option) *Storage {
	s := &Storage{
		boards: make(map[domain.BoardName]map[domain.ThreadId]*domain.Thread),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) timestamp() time.Time {
	return s.now().UTC()
}

// thread must be called with s.mu held.
func (s *Storage) thread(board domain.BoardName, id domain.ThreadId) (*domain.Thread, error) {
	thread, ok := s.boards[board][id]
	if !ok {
		return nil, errThreadNotFound
	}
	return thread, nil
}

// reply must be called with s.mu held.
func (s *Storage) reply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) (*domain.Thread, int, error) {
	thread, err := s.thread(board, threadId)
	if err != nil {
		return nil, -1, err
	}
	for i := range thread.Replies {
		if thread.Replies[i].Id == replyId {
			return thread, i, nil
		}
	}
	return nil, -1, errReplyNotFound
}

// ThreadCount is the number of live threads on all boards.
func (s *Storage) ThreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.threads
}

// ReplyCount is the number of live replies on all boards.
func (s *Storage) ReplyCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replies
}
