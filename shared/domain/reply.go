package domain

import (
	"sort"
	"time"
)

type ReplyCreationData struct {
	Board        BoardName
	ThreadId     ThreadId
	Text         PostText
	PasswordHash PasswordHash
}

// Reply belongs to exactly one Thread and lives in its Replies slice.
type Reply struct {
	Id           ReplyId
	Text         PostText
	PasswordHash PasswordHash
	CreatedOn    time.Time
	Reported     bool
}

type ReplyView struct {
	Id        ReplyId   `json:"reply_id"`
	ThreadId  ThreadId  `json:"thread_id"`
	Text      PostText  `json:"text"`
	CreatedOn time.Time `json:"created_on"`
}

func NewReplyView(r *Reply, threadId ThreadId) ReplyView {
	return ReplyView{
		Id:        r.Id,
		ThreadId:  threadId,
		Text:      r.Text,
		CreatedOn: r.CreatedOn,
	}
}

// SortRepliesNewestFirst orders by creation time descending, newer id first on ties.
func SortRepliesNewestFirst(replies []Reply) {
	sort.Slice(replies, func(i, j int) bool {
		if !replies[i].CreatedOn.Equal(replies[j].CreatedOn) {
			return replies[i].CreatedOn.After(replies[j].CreatedOn)
		}
		return replies[i].Id > replies[j].Id
	})
}
