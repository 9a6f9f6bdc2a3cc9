package domain

import (
	"sort"
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Board        BoardName
	Text         PostText
	PasswordHash PasswordHash
}

// Thread is the stored record. It carries the password hash and the
// reported flag and must never be written to a response, use ThreadView.
type Thread struct {
	Id           ThreadId
	Board        BoardName
	Text         PostText
	PasswordHash PasswordHash
	CreatedOn    time.Time
	BumpedOn     time.Time
	Reported     bool
	Replies      []Reply
}

// ThreadView is the outward projection of a Thread.
type ThreadView struct {
	Id         ThreadId    `json:"thread_id"`
	Board      BoardName   `json:"board"`
	Text       PostText    `json:"text"`
	CreatedOn  time.Time   `json:"created_on"`
	BumpedOn   time.Time   `json:"bumped_on"`
	Replies    []ReplyView `json:"replies"`
	ReplyCount int         `json:"replycount"`
}

// NewThreadView projects t, keeping the replyLimit most recent replies
// newest first. replyLimit <= 0 keeps all of them.
func NewThreadView(t *Thread, replyLimit int) ThreadView {
	replies := make([]Reply, len(t.Replies))
	copy(replies, t.Replies)
	SortRepliesNewestFirst(replies)
	if replyLimit > 0 && len(replies) > replyLimit {
		replies = replies[:replyLimit]
	}

	views := make([]ReplyView, 0, len(replies))
	for i := range replies {
		views = append(views, NewReplyView(&replies[i], t.Id))
	}

	return ThreadView{
		Id:         t.Id,
		Board:      t.Board,
		Text:       t.Text,
		CreatedOn:  t.CreatedOn,
		BumpedOn:   t.BumpedOn,
		Replies:    views,
		ReplyCount: len(t.Replies),
	}
}

// SortThreadsByBump orders threads most recently bumped first.
// Equal bump times keep creation order.
func SortThreadsByBump(threads []*Thread) {
	sort.SliceStable(threads, func(i, j int) bool {
		if !threads[i].BumpedOn.Equal(threads[j].BumpedOn) {
			return threads[i].BumpedOn.After(threads[j].BumpedOn)
		}
		return threads[i].Id < threads[j].Id
	})
}
