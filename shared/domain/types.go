package domain

type (
	BoardName = string

	ThreadId = int64
	ReplyId  = int64

	PostText     = string
	Password     = string
	PasswordHash = string
)
