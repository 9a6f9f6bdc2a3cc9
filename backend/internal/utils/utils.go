package utils

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/threadboard/shared/domain"
	"github.com/itchan-dev/threadboard/shared/errors"
	"github.com/microcosm-cc/bluemonday"
)

const maxBoardNameLen = 64

type BoardNameValidator struct{}

func (e *BoardNameValidator) Name(name domain.BoardName) error {
	if strings.TrimSpace(name) == "" {
		return errors.Validation("Board is required")
	}
	if utf8.RuneCountInString(name) > maxBoardNameLen {
		return errors.Validation("Board name is too long")
	}
	return nil
}

// PostValidator checks and cleans user supplied post fields.
type PostValidator struct {
	BoardNameValidator
	maxTextLen int
	policy     *bluemonday.Policy
}

// NewPostValidator strips all markup from post text. maxTextLen <= 0 disables the length check.
func NewPostValidator(maxTextLen int) *PostValidator {
	return &PostValidator{
		maxTextLen: maxTextLen,
		policy:     bluemonday.StrictPolicy(),
	}
}

// Text returns the text with markup removed. Entities the sanitizer
// produces are decoded again, so plain characters round-trip unchanged.
func (e *PostValidator) Text(text domain.PostText) (domain.PostText, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.Validation("Text is required")
	}
	if e.maxTextLen > 0 && utf8.RuneCountInString(text) > e.maxTextLen {
		return "", errors.Validation("Text is too long")
	}
	clean := strings.TrimSpace(html.UnescapeString(e.policy.Sanitize(text)))
	if clean == "" {
		return "", errors.Validation("Text is empty after removing markup")
	}
	return clean, nil
}

func (e *PostValidator) Password(password domain.Password) error {
	if password == "" {
		return errors.Validation("Delete password is required")
	}
	return nil
}
