package service

import (
	stderrors "errors"

	"github.com/itchan-dev/threadboard/shared/domain"
	"github.com/itchan-dev/threadboard/shared/errors"
	"github.com/itchan-dev/threadboard/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

var errIncorrectPassword = errors.Forbidden("Incorrect password")

// Passwords hashes and checks delete passwords with bcrypt.
// Calls never touch the store, so callers run them outside its lock.
type Passwords struct {
	cost int
}

func NewPasswords(cost int) *Passwords {
	return &Passwords{cost: cost}
}

func (p *Passwords) Hash(password domain.Password) (domain.PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		if stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errors.Validation("Delete password is too long")
		}
		logger.Log.Error("failed to hash password", "error", err)
		return "", errors.Internal("Internal error")
	}
	return string(hash), nil
}

// Verify returns a forbidden error on mismatch.
func (p *Passwords) Verify(hash domain.PasswordHash, password domain.Password) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	// a password too long to hash can't have produced the stored hash
	if stderrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
		return errIncorrectPassword
	}
	logger.Log.Error("failed to compare password hash", "error", err)
	return errors.Internal("Internal error")
}
