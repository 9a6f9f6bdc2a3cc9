package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Validation means a required field is missing or malformed.
func Validation(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusBadRequest}
}

// NotFound means the referenced board, thread or reply does not exist.
func NotFound(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusNotFound}
}

// Forbidden means the supplied delete password did not match.
func Forbidden(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusForbidden}
}

func Internal(msg string) error {
	return &ErrorWithStatusCode{Message: msg, StatusCode: http.StatusInternalServerError}
}

func hasStatus(err error, code int) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == code
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func IsValidation(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}
