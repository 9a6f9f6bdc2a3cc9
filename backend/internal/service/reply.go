package service

import (
	"github.com/itchan-dev/threadboard/shared/domain"
)

type ReplyService interface {
	Create(board domain.BoardName, threadId domain.ThreadId, text domain.PostText, password domain.Password) (domain.ReplyView, error)
	Report(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error
	Delete(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, password domain.Password) error
}

type Reply struct {
	storage   ReplyStorage
	validator PostValidator
	passwords *Passwords
}

type ReplyStorage interface {
	CreateReply(creationData domain.ReplyCreationData) (domain.Reply, error)
	ReportReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error
	ReplyPasswordHash(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) (domain.PasswordHash, error)
	DeleteReply(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error
}

func NewReply(storage ReplyStorage, validator PostValidator, passwords *Passwords) *Reply {
	return &Reply{
		storage:   storage,
		validator: validator,
		passwords: passwords,
	}
}

// Create validates and hashes before the thread lookup.
func (b *Reply) Create(board domain.BoardName, threadId domain.ThreadId, text domain.PostText, password domain.Password) (domain.ReplyView, error) {
	if err := b.validator.Name(board); err != nil {
		return domain.ReplyView{}, err
	}
	text, err := b.validator.Text(text)
	if err != nil {
		return domain.ReplyView{}, err
	}
	if err := b.validator.Password(password); err != nil {
		return domain.ReplyView{}, err
	}

	hash, err := b.passwords.Hash(password)
	if err != nil {
		return domain.ReplyView{}, err
	}

	reply, err := b.storage.CreateReply(domain.ReplyCreationData{
		Board:        board,
		ThreadId:     threadId,
		Text:         text,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.ReplyView{}, err
	}
	return domain.NewReplyView(&reply, threadId), nil
}

// Report flags the reply for moderators. No password is needed.
func (b *Reply) Report(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId) error {
	if err := b.validator.Name(board); err != nil {
		return err
	}
	return b.storage.ReportReply(board, threadId, replyId)
}

func (b *Reply) Delete(board domain.BoardName, threadId domain.ThreadId, replyId domain.ReplyId, password domain.Password) error {
	if err := b.validator.Name(board); err != nil {
		return err
	}
	if err := b.validator.Password(password); err != nil {
		return err
	}
	hash, err := b.storage.ReplyPasswordHash(board, threadId, replyId)
	if err != nil {
		return err
	}
	if err := b.passwords.Verify(hash, password); err != nil {
		return err
	}
	return b.storage.DeleteReply(board, threadId, replyId)
}
