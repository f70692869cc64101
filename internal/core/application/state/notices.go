package state

import (
	"sync"
	"time"

	"dashboard/internal/core/domain/model/kernel"
)

const DefaultNoticeCapacity = 50

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a transient message for the admin.
type Notice struct {
	ID      kernel.UUID
	Level   NoticeLevel
	Text    string
	OrderID kernel.ID
	At      time.Time
}

// NoticeBoard collects notices until they are drained. When full, the oldest
// notice is dropped.
type NoticeBoard struct {
	capacity int

	mu      sync.Mutex
	notices []Notice
}

func NewNoticeBoard(capacity int) *NoticeBoard {
	if capacity <= 0 {
		capacity = DefaultNoticeCapacity
	}
	return &NoticeBoard{capacity: capacity}
}

func (b *NoticeBoard) Success(orderID kernel.ID, text string) Notice {
	return b.post(NoticeSuccess, orderID, text)
}

func (b *NoticeBoard) Error(orderID kernel.ID, text string) Notice {
	return b.post(NoticeError, orderID, text)
}

// Drain returns the pending notices, oldest first, and clears the board.
func (b *NoticeBoard) Drain() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.notices
	b.notices = nil
	if out == nil {
		out = []Notice{}
	}
	return out
}

func (b *NoticeBoard) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.notices)
}

func (b *NoticeBoard) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = nil
}

func (b *NoticeBoard) post(level NoticeLevel, orderID kernel.ID, text string) Notice {
	n := Notice{
		ID:      kernel.NewUUID(),
		Level:   level,
		Text:    text,
		OrderID: orderID,
		At:      time.Now().UTC(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, n)
	if over := len(b.notices) - b.capacity; over > 0 {
		b.notices = append([]Notice(nil), b.notices[over:]...)
	}
	return n
}
