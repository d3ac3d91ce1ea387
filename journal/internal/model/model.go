package model

import (
	"time"

	"github.com/Astemirdum/library-console/pkg/kafka"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type Entry struct {
	ID            string    `json:"id" db:"id"`
	Type          string    `json:"type" db:"type"`
	UserID        string    `json:"userId,omitempty" db:"user_id"`
	BookID        string    `json:"bookId,omitempty" db:"book_id"`
	BorrowID      string    `json:"borrowId,omitempty" db:"borrow_id"`
	ReservationID string    `json:"reservationId,omitempty" db:"reservation_id"`
	Amount        float64   `json:"amount,omitempty" db:"amount"`
	Method        string    `json:"method,omitempty" db:"method"`
	RequestID     string    `json:"requestId,omitempty" db:"request_id"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	RecordedAt    time.Time `json:"recordedAt" db:"recorded_at"`
}

func NewEntry(e kafka.Event) Entry {
	return Entry{
		ID:            e.ID,
		Type:          string(e.Type),
		UserID:        e.UserID,
		BookID:        e.BookID,
		BorrowID:      e.BorrowID,
		ReservationID: e.ReservationID,
		Amount:        e.Amount,
		Method:        e.Method,
		RequestID:     e.RequestID,
		Timestamp:     e.Timestamp,
	}
}

// Filter selects entries newest first; an empty Type matches every type.
type Filter struct {
	Type  string
	Limit int
}

type Journal struct {
	Entries []Entry `json:"entries"`
}

type TypeCount struct {
	Type  string    `json:"type" db:"type"`
	Count int       `json:"count" db:"cnt"`
	Last  time.Time `json:"last" db:"last"`
}

type Counts struct {
	Data []TypeCount `json:"data"`
}
