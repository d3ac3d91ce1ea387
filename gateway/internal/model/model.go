package model

import (
	"time"

	"github.com/Astemirdum/library-console/pkg/libapi"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type IssueBookRequest struct {
	UserID string `json:"userId" validate:"required"`
	BookID string `json:"bookId" validate:"required"`
	Days   int    `json:"days" validate:"min=1,max=60"`
}

// ReturnBookRequest carries the payment method, needed only when the borrow has a fine.
type ReturnBookRequest struct {
	Method libapi.PaymentMethod `json:"method,omitempty" validate:"omitempty,oneof=cash card online"`
}

type ReserveBookRequest struct {
	UserID string `json:"userId" validate:"required"`
	BookID string `json:"bookId" validate:"required"`
}

type CancelReservationRequest struct {
	Confirm bool `json:"confirm"`
}

type ReviewRequest struct {
	UserID string `json:"userId,omitempty"`
	BookID string `json:"bookId" validate:"required"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
	Review string `json:"review" validate:"required"`
}

type BookRequest struct {
	Title           string `json:"title" validate:"required,min=2"`
	Author          string `json:"author" validate:"required,min=2"`
	ISBN            string `json:"isbn,omitempty"`
	Publisher       string `json:"publisher" validate:"required,min=2"`
	Genre           string `json:"genre" validate:"required,min=2"`
	PublicationYear int    `json:"publicationYear" validate:"min=0"`
	TotalCopies     int    `json:"totalCopies" validate:"min=1"`
	ShelfLocation   string `json:"shelfLocation" validate:"required,min=2"`
	Summary         string `json:"summary" validate:"required,min=5"`
}

func (r BookRequest) Input() libapi.BookInput {
	return libapi.BookInput{
		Title:           r.Title,
		Author:          r.Author,
		ISBN:            r.ISBN,
		Publisher:       r.Publisher,
		Genre:           r.Genre,
		PublicationYear: r.PublicationYear,
		TotalCopies:     r.TotalCopies,
		ShelfLocation:   r.ShelfLocation,
		Summary:         r.Summary,
	}
}

type UserCreateRequest struct {
	Name     string      `json:"name" validate:"required,min=2"`
	Email    string      `json:"email" validate:"required,email"`
	Phone    string      `json:"phone,omitempty" validate:"omitempty,min=8"`
	Address  string      `json:"address" validate:"required,min=5"`
	Role     libapi.Role `json:"role" validate:"required,oneof=member librarian"`
	Password string      `json:"password" validate:"required,min=6"`
}

// UserUpdateRequest leaves out email and password, neither is editable.
type UserUpdateRequest struct {
	Name    string      `json:"name" validate:"required,min=2"`
	Phone   string      `json:"phone,omitempty" validate:"omitempty,min=8"`
	Address string      `json:"address" validate:"required,min=5"`
	Role    libapi.Role `json:"role" validate:"required,oneof=member librarian"`
}

// BorrowView is a borrow with its display flags derived at fetch time.
type BorrowView struct {
	libapi.Borrow
	Overdue      bool `json:"overdue"`
	NeedsPayment bool `json:"needsPayment"`
}

func NewBorrowView(b libapi.Borrow, now time.Time) BorrowView {
	return BorrowView{
		Borrow:       b,
		Overdue:      b.Overdue(now),
		NeedsPayment: b.NeedsPayment(),
	}
}

func NewBorrowViews(borrows []libapi.Borrow, now time.Time) []BorrowView {
	out := make([]BorrowView, 0, len(borrows))
	for _, b := range borrows {
		out = append(out, NewBorrowView(b, now))
	}
	return out
}

// BorrowPage backs the issue/return screen: history plus the issue form pickers.
type BorrowPage struct {
	Borrows []BorrowView  `json:"borrows"`
	Users   []libapi.User `json:"users"`
	Books   []libapi.Book `json:"books"`
}

type Dashboard struct {
	Stats      *libapi.DashboardStats `json:"stats,omitempty"`
	Activities []libapi.Activity      `json:"activities"`
	Warnings   []string               `json:"warnings,omitempty"`
}

type MemberHome struct {
	Stats      *libapi.MemberStats `json:"stats,omitempty"`
	Activities []libapi.Activity   `json:"activities"`
	Warnings   []string            `json:"warnings,omitempty"`
}

type FinesPage struct {
	Payments    []libapi.FinePayment `json:"payments"`
	Outstanding []BorrowView         `json:"outstanding"`
	Warnings    []string             `json:"warnings,omitempty"`
}

type ReservationCounts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type ReservationsPage struct {
	Reservations []libapi.Reservation `json:"reservations"`
	Counts       ReservationCounts    `json:"counts"`
}

// NewReservationsPage counts every reservation by status, then keeps those
// matching status (all when empty).
func NewReservationsPage(all []libapi.Reservation, status libapi.ReservationStatus) ReservationsPage {
	page := ReservationsPage{Reservations: make([]libapi.Reservation, 0, len(all))}
	for _, r := range all {
		switch r.Status {
		case libapi.ReservationActive:
			page.Counts.Active++
		case libapi.ReservationCompleted:
			page.Counts.Completed++
		case libapi.ReservationCancelled:
			page.Counts.Cancelled++
		}
		if status == "" || r.Status == status {
			page.Reservations = append(page.Reservations, r)
		}
	}
	return page
}

type JournalEntry struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	UserID        string    `json:"userId,omitempty"`
	BookID        string    `json:"bookId,omitempty"`
	BorrowID      string    `json:"borrowId,omitempty"`
	ReservationID string    `json:"reservationId,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	Method        string    `json:"method,omitempty"`
	RequestID     string    `json:"requestId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	RecordedAt    time.Time `json:"recordedAt"`
}

type Journal struct {
	Entries []JournalEntry `json:"entries"`
}

// ReturnResult holds the closed borrow, or the fine payment that closed it.
type ReturnResult struct {
	Borrow  *libapi.Borrow      `json:"borrow,omitempty"`
	Payment *libapi.FinePayment `json:"payment,omitempty"`
}
