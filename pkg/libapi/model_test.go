package libapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBorrow_Overdue(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		borrow Borrow
		want   bool
	}{
		{"issued past due", Borrow{Status: BorrowIssued, DueDate: now.Add(-time.Hour)}, true},
		{"late past due", Borrow{Status: BorrowLate, DueDate: now.Add(-48 * time.Hour)}, true},
		{"issued before due", Borrow{Status: BorrowIssued, DueDate: now.Add(time.Hour)}, false},
		{"returned past due", Borrow{Status: BorrowReturned, DueDate: now.Add(-time.Hour)}, false},
		{"issued without due date", Borrow{Status: BorrowIssued}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.borrow.Overdue(now))
		})
	}
}

func TestBorrow_NeedsPayment(t *testing.T) {
	t.Parallel()
	require.True(t, Borrow{Status: BorrowLate, Fine: 12.5}.NeedsPayment())
	require.False(t, Borrow{Status: BorrowIssued}.NeedsPayment())
	require.False(t, Borrow{Status: BorrowReturned, Fine: 3}.NeedsPayment())
}

func TestReservation_Cancellable(t *testing.T) {
	t.Parallel()
	require.True(t, Reservation{Status: ReservationActive}.Cancellable())
	require.False(t, Reservation{Status: ReservationCompleted}.Cancellable())
	require.False(t, Reservation{Status: ReservationCancelled}.Cancellable())
}

func TestBorrow_DecodesPopulatedAndBareReferences(t *testing.T) {
	t.Parallel()
	var populated, bare Borrow
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"br1","userId":{"_id":"u1","name":"Ann"},"bookId":{"_id":"b1","title":"Dune","availableCopies":0},"status":"issued","fine":0}`), &populated))
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"br2","userId":"u2","bookId":"b2","status":"late","fine":4.5,"returnDate":null}`), &bare))

	require.Equal(t, "Ann", populated.User.Name)
	require.Equal(t, "Dune", populated.Book.Title)
	require.False(t, populated.Book.Issuable())

	require.Equal(t, "u2", bare.User.ID)
	require.Equal(t, "b2", bare.Book.ID)
	require.Nil(t, bare.ReturnDate)
	require.Equal(t, 4.5, bare.Fine)
}

func TestPayload_Envelopes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"bare array", `[{"_id":"r1"},{"_id":"r2"}]`, []string{"r1", "r2"}},
		{"data", `{"data":[{"_id":"r1"}]}`, []string{"r1"}},
		{"borrowDetails", `{"success":true,"borrowDetails":[{"_id":"r3"}]}`, []string{"r3"}},
		{"empty", `{"data":[]}`, []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var p payload[[]Reservation]
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			ids := make([]string, 0, len(p.get()))
			for _, r := range p.get() {
				ids = append(ids, r.ID)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestPayload_StringFieldIsNotAnEnvelope(t *testing.T) {
	t.Parallel()
	var p payload[Review]
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"rv1","rating":4,"review":"great read","bookId":"b1"}`), &p))
	require.Equal(t, "great read", p.get().Review)
	require.Equal(t, 4, p.get().Rating)

	var stats payload[DashboardStats]
	require.NoError(t, json.Unmarshal([]byte(`{"totalBooks":10,"totalCustomers":3,"activeBorrows":2,"pendingReservations":1,"totalFines":7.5}`), &stats))
	require.Equal(t, 7.5, stats.get().TotalFines)
}
