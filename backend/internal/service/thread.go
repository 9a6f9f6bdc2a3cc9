package service

import (
	"github.com/itchan-dev/threadboard/shared/config"
	"github.com/itchan-dev/threadboard/shared/domain"
)

type ThreadService interface {
	Create(board domain.BoardName, text domain.PostText, password domain.Password) (domain.ThreadView, error)
	Recent(board domain.BoardName, limit int) ([]domain.ThreadView, error)
	Get(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error)
	Report(board domain.BoardName, id domain.ThreadId) error
	Delete(board domain.BoardName, id domain.ThreadId, password domain.Password) error
}

type Thread struct {
	storage   ThreadStorage
	validator PostValidator
	passwords *Passwords
	cfg       config.Public
}

type ThreadStorage interface {
	CreateThread(creationData domain.ThreadCreationData) (domain.Thread, error)
	RecentThreads(board domain.BoardName, limit, replyLimit int) ([]domain.ThreadView, error)
	GetThread(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error)
	ReportThread(board domain.BoardName, id domain.ThreadId) error
	ThreadPasswordHash(board domain.BoardName, id domain.ThreadId) (domain.PasswordHash, error)
	DeleteThread(board domain.BoardName, id domain.ThreadId) error
}

type PostValidator interface {
	Name(board domain.BoardName) error
	Text(text domain.PostText) (domain.PostText, error)
	Password(password domain.Password) error
}

func NewThread(storage ThreadStorage, validator PostValidator, passwords *Passwords, cfg config.Public) *Thread {
	return &Thread{
		storage:   storage,
		validator: validator,
		passwords: passwords,
		cfg:       cfg,
	}
}

func (b *Thread) Create(board domain.BoardName, text domain.PostText, password domain.Password) (domain.ThreadView, error) {
	if err := b.validator.Name(board); err != nil {
		return domain.ThreadView{}, err
	}
	text, err := b.validator.Text(text)
	if err != nil {
		return domain.ThreadView{}, err
	}
	if err := b.validator.Password(password); err != nil {
		return domain.ThreadView{}, err
	}

	// hashed before the store is locked
	hash, err := b.passwords.Hash(password)
	if err != nil {
		return domain.ThreadView{}, err
	}

	thread, err := b.storage.CreateThread(domain.ThreadCreationData{
		Board:        board,
		Text:         text,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.ThreadView{}, err
	}
	return domain.NewThreadView(&thread, b.cfg.RepliesPreview), nil
}

// Recent lists the board front page. limit outside 1..ThreadsLimit means ThreadsLimit.
func (b *Thread) Recent(board domain.BoardName, limit int) ([]domain.ThreadView, error) {
	if err := b.validator.Name(board); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > b.cfg.ThreadsLimit {
		limit = b.cfg.ThreadsLimit
	}
	return b.storage.RecentThreads(board, limit, b.cfg.RepliesPreview)
}

func (b *Thread) Get(board domain.BoardName, id domain.ThreadId) (domain.ThreadView, error) {
	if err := b.validator.Name(board); err != nil {
		return domain.ThreadView{}, err
	}
	return b.storage.GetThread(board, id)
}

// Report flags the thread for moderators. No password is needed.
func (b *Thread) Report(board domain.BoardName, id domain.ThreadId) error {
	if err := b.validator.Name(board); err != nil {
		return err
	}
	return b.storage.ReportThread(board, id)
}

func (b *Thread) Delete(board domain.BoardName, id domain.ThreadId, password domain.Password) error {
	if err := b.validator.Name(board); err != nil {
		return err
	}
	if err := b.validator.Password(password); err != nil {
		return err
	}
	hash, err := b.storage.ThreadPasswordHash(board, id)
	if err != nil {
		return err
	}
	if err := b.passwords.Verify(hash, password); err != nil {
		return err
	}
	return b.storage.DeleteThread(board, id)
}
