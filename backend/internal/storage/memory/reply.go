package memory

import (
	"slices"

	"github.com/itchan-dev/threadboard/shared/domain"
)

// CreateReply appends a reply and bumps its thread.
// Reply ids are global, not per thread.
func (s *Storage) CreateReply(creationData domain.ReplyCreationData) (domain.Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, err := s.thread(creationData.Board, creationData.ThreadId)
	if err != nil {
		return domain.Reply{}, err
	}

	s.lastReplyId++
	now := s.timestamp()
	reply := domain.Reply{
		Id:           s.lastReplyId,
		Text:         creationData.Text,
		PasswordHash: creationData.PasswordHash,
		CreatedOn:    now,
	}
	thread.Replies = append(thread.Replies, reply)
	// a clock step backwards must not move a thread down the board
	if now.After(thread.BumpedOn) {
		thread.BumpedOn = now
	}
	s.replies++

	return reply, nil
}

func (s *Storage) ReportReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, idx, err := s.reply(board, threadId, replyId)
	if err != nil {
		return err
	}
	thread.Replies[idx].Reported = true
	return nil
}

func (s *Storage) ReplyPasswordHash(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) (domain.PasswordHash, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	thread, idx, err := s.reply(board, threadId, replyId)
	if err != nil {
		return "", err
	}
	return thread.Replies[idx].PasswordHash, nil
}

// DeleteReply removes one reply. The thread keeps its bump time.
func (s *Storage) DeleteReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, idx, err := s.reply(board, threadId, replyId)
	if err != nil {
		return err
	}
	thread.Replies = slices.Delete(thread.Replies, idx, idx+1)
	s.replies--
	return nil
}
