package memory

import (
	"github.com/itchan-dev/threadboard/shared/domain"
)

// CreateThread stores a new thread and returns a copy of it.
func (s *Storage) CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastThreadId++
	now := s.timestamp()
	thread := &domain.Thread{
		Id:           s.lastThreadId,
		Board:        creationData.Board,
		Text:         creationData.Text,
		PasswordHash: creationData.PasswordHash,
		CreatedOn:    now,
		BumpedOn:     now,
		Replies:      []domain.Reply{},
	}

	board, ok := s.boards[creationData.Board]
	if !ok {
		board = make(map[domain.ThreadId]*domain.Thread)
		s.boards[creationData.Board] = board
	}
	board[thread.Id] = thread
	s.threads++

	created := *thread
	created.Replies = []domain.Reply{}
	return created, nil
}

// RecentThreads returns up to limit threads of board, most recently bumped
// first, each carrying its replyLimit newest replies.
func (s *Storage) RecentThreads(board domain.BoardName, limit, replyLimit int) ([]domain.ThreadView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	threads := make([]*domain.Thread, 0, len(s.boards[board]))
	for _, t := range s.boards[board] {
		threads = append(threads, t)
	}
	domain.SortThreadsByBump(threads)
	if limit >= 0 && len(threads) > limit {
		threads = threads[:limit]
	}

	views := make([]domain.ThreadView, 0, len(threads))
	for _, t := range threads {
		views = append(views, domain.NewThreadView(t, replyLimit))
	}
	return views, nil
}

// GetThread returns the thread with all of its replies.
func (s *Storage) GetThread(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, err := s.thread(board, id)
	if err != nil {
		return domain.ThreadView{}, err
	}
	return domain.NewThreadView(thread, 0), nil
}

func (s *Storage) ReportThread(board domain.BoardName, id domain.ThreadId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, err := s.thread(board, id)
	if err != nil {
		return err
	}
	thread.Reported = true
	return nil
}

// ThreadPasswordHash returns the stored hash so it can be compared outside the lock.
func (s *Storage) ThreadPasswordHash(board domain.BoardName, id domain.ThreadId) (domain.PasswordHash, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, err := s.thread(board, id)
	if err != nil {
		return "", err
	}
	return thread.PasswordHash, nil
}

// DeleteThread drops the thread together with its replies.
func (s *Storage) DeleteThread(board domain.BoardName, id domain.ThreadId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, err := s.thread(board, id)
	if err != nil {
		return err
	}
	delete(s.boards[board], id)
	if len(s.boards[board]) == 0 {
		delete(s.boards, board)
	}
	s.threads--
	s.replies -= len(thread.Replies)
	return nil
}
