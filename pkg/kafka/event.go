package kafka

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type EventType string

const (
	EventBorrowIssued         EventType = "borrow_issued"
	EventBorrowReturned       EventType = "borrow_returned"
	EventFinePaid             EventType = "fine_paid"
	EventReservationCreated   EventType = "reservation_created"
	EventReservationCancelled EventType = "reservation_cancelled"
	EventReviewCreated        EventType = "review_created"
	EventBookCreated          EventType = "book_created"
	EventBookUpdated          EventType = "book_updated"
	EventBookDeleted          EventType = "book_deleted"
	EventUserCreated          EventType = "user_created"
	EventUserUpdated          EventType = "user_updated"
)

// Event is one mutation issued through the console.
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	UserID        string    `json:"userId,omitempty"`
	BookID        string    `json:"bookId,omitempty"`
	BorrowID      string    `json:"borrowId,omitempty"`
	ReservationID string    `json:"reservationId,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	Method        string    `json:"method,omitempty"`
	RequestID     string    `json:"requestId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e Event) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEvent(data []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(data, &e)
	return e, err
}
