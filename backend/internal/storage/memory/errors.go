package memory

import (
	internal_errors "github.com/itchan-dev/threadboard/shared/errors"
)

var (
	errThreadNotFound = internal_errors.NotFound("Thread not found")
	errReplyNotFound  = internal_errors.NotFound("Reply not found")
)
