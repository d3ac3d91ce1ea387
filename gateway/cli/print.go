package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/libapi"
)

const dateLayout = "2006-01-02"

func table(out io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func userName(u *libapi.User) string {
	switch {
	case u == nil:
		return "-"
	case u.Name != "":
		return u.Name
	default:
		return u.ID
	}
}

func bookTitle(b *libapi.Book) string {
	switch {
	case b == nil:
		return "-"
	case b.Title != "":
		return b.Title
	default:
		return b.ID
	}
}

func printBooks(out io.Writer, books []libapi.Book) error {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{b.ID, b.Title, b.Author, b.Genre, fmt.Sprintf("%d/%d", b.AvailableCopies, b.TotalCopies), b.ShelfLocation})
	}
	return table(out, []string{"ID", "TITLE", "AUTHOR", "GENRE", "AVAILABLE", "SHELF"}, rows)
}

func printUsers(out io.Writer, users []libapi.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.Name, u.Email, string(u.Role), orDash(u.LastBorrowStatus), money(u.PendingFines)})
	}
	return table(out, []string{"ID", "NAME", "EMAIL", "ROLE", "LAST BORROW", "PENDING FINES"}, rows)
}

func printBorrows(out io.Writer, borrows []model.BorrowView) error {
	rows := make([][]string, 0, len(borrows))
	for _, b := range borrows {
		status := string(b.Status)
		if b.Overdue {
			status += " (overdue)"
		}
		returned := "-"
		if b.ReturnDate != nil {
			returned = date(*b.ReturnDate)
		}
		rows = append(rows, []string{b.ID, userName(b.User), bookTitle(b.Book), date(b.IssueDate), date(b.DueDate), returned, status, money(b.Fine)})
	}
	return table(out, []string{"ID", "MEMBER", "BOOK", "ISSUED", "DUE", "RETURNED", "STATUS", "FINE"}, rows)
}

func printPayments(out io.Writer, payments []libapi.FinePayment) error {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		book := "-"
		if p.Borrow != nil {
			book = bookTitle(p.Borrow.Book)
		}
		rows = append(rows, []string{p.ID, userName(p.User), book, money(p.Amount), string(p.Method), date(p.PaymentDate)})
	}
	return table(out, []string{"ID", "MEMBER", "BOOK", "AMOUNT", "METHOD", "PAID"}, rows)
}

func printReservations(out io.Writer, page model.ReservationsPage) error {
	fmt.Fprintf(out, "active: %d  completed: %d  cancelled: %d\n",
		page.Counts.Active, page.Counts.Completed, page.Counts.Cancelled)
	rows := make([][]string, 0, len(page.Reservations))
	for _, r := range page.Reservations {
		rows = append(rows, []string{r.ID, userName(r.User), bookTitle(r.Book), date(r.ReservedDate), date(r.ExpiryDate), string(r.Status)})
	}
	return table(out, []string{"ID", "MEMBER", "BOOK", "RESERVED", "EXPIRES", "STATUS"}, rows)
}

func printReviews(out io.Writer, reviews []libapi.Review) error {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{r.ID, userName(r.User), bookTitle(r.Book), strings.Repeat("*", r.Rating), r.Review})
	}
	return table(out, []string{"ID", "MEMBER", "BOOK", "RATING", "REVIEW"}, rows)
}

func printActivities(out io.Writer, activities []libapi.Activity) error {
	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		amount := "-"
		if a.Amount > 0 {
			amount = money(a.Amount)
		}
		rows = append(rows, []string{string(a.Type), a.User, orDash(a.Book), amount, a.Time})
	}
	return table(out, []string{"TYPE", "MEMBER", "BOOK", "AMOUNT", "WHEN"}, rows)
}

func printWarnings(out io.Writer, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
