package libapi

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleMember    Role = "member"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

type Book struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn,omitempty"`
	Publisher       string    `json:"publisher,omitempty"`
	Genre           string    `json:"genre,omitempty"`
	PublicationYear int       `json:"publicationYear"`
	TotalCopies     int       `json:"totalCopies"`
	AvailableCopies int       `json:"availableCopies"`
	ShelfLocation   string    `json:"shelfLocation,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Issuable reports whether a copy can be lent out right now.
func (b Book) Issuable() bool {
	return b.AvailableCopies > 0
}

// UnmarshalJSON also accepts a bare id, as sent for unpopulated references.
func (b *Book) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &b.ID)
	}
	type plain Book
	return json.Unmarshal(data, (*plain)(b))
}

type BookInput struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn,omitempty"`
	Publisher       string `json:"publisher"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publicationYear"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies,omitempty"`
	ShelfLocation   string `json:"shelfLocation"`
	Summary         string `json:"summary"`
}

type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      Role      `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// computed by the server
	LastBorrowStatus string  `json:"lastBorrowStatus,omitempty"`
	Reservations     int     `json:"reservations,omitempty"`
	PendingFines     float64 `json:"pendingFines,omitempty"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &u.ID)
	}
	type plain User
	return json.Unmarshal(data, (*plain)(u))
}

type UserCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

type UserUpdate struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
	Role    Role   `json:"role"`
}

type BorrowStatus string

const (
	BorrowIssued   BorrowStatus = "issued"
	BorrowReturned BorrowStatus = "returned"
	BorrowLate     BorrowStatus = "late"
)

type Borrow struct {
	ID         string       `json:"_id"`
	User       *User        `json:"userId,omitempty"`
	Book       *Book        `json:"bookId,omitempty"`
	IssueDate  time.Time    `json:"issueDate"`
	DueDate    time.Time    `json:"dueDate"`
	ReturnDate *time.Time   `json:"returnDate,omitempty"`
	Status     BorrowStatus `json:"status"`
	Fine       float64      `json:"fine"`
}

// Overdue is display-only: not returned and past a known due date.
func (b Borrow) Overdue(now time.Time) bool {
	return b.Status != BorrowReturned && !b.DueDate.IsZero() && now.After(b.DueDate)
}

// NeedsPayment reports whether returning the borrow requires settling a fine first.
func (b Borrow) NeedsPayment() bool {
	return b.Status != BorrowReturned && b.Fine > 0
}

type IssueBook struct {
	UserID string `json:"userId"`
	BookID string `json:"bookId"`
	Days   int    `json:"days"`
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

type PayFine struct {
	UserID   string        `json:"userId"`
	BorrowID string        `json:"borrowId"`
	Amount   float64       `json:"amount"`
	Method   PaymentMethod `json:"method"`
}

type FinePayment struct {
	ID          string        `json:"_id"`
	User        *User         `json:"userId,omitempty"`
	Borrow      *Borrow       `json:"borrowId,omitempty"`
	Amount      float64       `json:"amount"`
	Method      PaymentMethod `json:"method"`
	PaymentDate time.Time     `json:"paymentDate"`
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID           string            `json:"_id"`
	User         *User             `json:"userId,omitempty"`
	Book         *Book             `json:"bookId,omitempty"`
	ReservedDate time.Time         `json:"reservedDate"`
	ExpiryDate   time.Time         `json:"expiryDate"`
	Status       ReservationStatus `json:"status"`
}

// Cancellable is true only for active reservations.
func (r Reservation) Cancellable() bool {
	return r.Status == ReservationActive
}

type ReserveBook struct {
	UserID string `json:"userId"`
	BookID string `json:"bookId"`
}

type Review struct {
	ID        string    `json:"_id"`
	User      *User     `json:"userId,omitempty"`
	Book      *Book     `json:"bookId,omitempty"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewInput struct {
	UserID string `json:"userId,omitempty"`
	BookID string `json:"bookId"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

type DashboardStats struct {
	TotalBooks          int     `json:"totalBooks"`
	TotalCustomers      int     `json:"totalCustomers"`
	ActiveBorrows       int     `json:"activeBorrows"`
	PendingReservations int     `json:"pendingReservations"`
	TotalFines          float64 `json:"totalFines"`
}

type MemberStats struct {
	ActiveBorrows int     `json:"activeBorrows"`
	Reservations  int     `json:"reservations"`
	Fines         float64 `json:"fines"`
	TotalBorrowed int     `json:"totalBorrowed"`
}

type ActivityType string

const (
	ActivityBorrow      ActivityType = "borrow"
	ActivityReturn      ActivityType = "return"
	ActivityReservation ActivityType = "reservation"
	ActivityFinePayment ActivityType = "fine_payment"
)

type Activity struct {
	Type   ActivityType `json:"type"`
	User   string       `json:"user"`
	Book   string       `json:"book,omitempty"`
	Amount float64      `json:"amount,omitempty"`
	Time   string       `json:"time"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
