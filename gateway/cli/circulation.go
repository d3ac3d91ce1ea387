package cli

import (
	"fmt"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/spf13/cobra"
)

const defaultLoanDays = 14

func (c *console) borrowsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "borrows",
		Short: "Issue and return books",
	}
	cmd.AddCommand(c.borrowsListCmd(), c.borrowsIssueCmd(), c.borrowsReturnCmd())
	return cmd
}

func (c *console) borrowsListCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Borrow history, for everyone or one member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printBorrows(cmd, userID)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "member id")
	return cmd
}

func (c *console) borrowsIssueCmd() *cobra.Command {
	req := model.IssueBookRequest{Days: defaultLoanDays}
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Lend a book to a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := c.circulation.Issue(cmd.Context(), c.sess, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Issued %s, due %s\n", b.ID, date(b.DueDate))
			return c.printBorrows(cmd, "")
		},
	}
	cmd.Flags().StringVar(&req.UserID, "user", "", "member id")
	cmd.Flags().StringVar(&req.BookID, "book", "", "book id")
	cmd.Flags().IntVar(&req.Days, "days", defaultLoanDays, "loan length in days, 1 to 60")
	return cmd
}

func (c *console) borrowsReturnCmd() *cobra.Command {
	var req model.ReturnBookRequest
	cmd := &cobra.Command{
		Use:   "return BORROW_ID",
		Short: "Take a book back, settling its fine with --method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.circulation.Return(cmd.Context(), c.sess, args[0], req)
			if err != nil {
				return err
			}
			if res.Payment != nil {
				fmt.Fprintf(c.out, "Fine of %s paid by %s, book returned\n", money(res.Payment.Amount), res.Payment.Method)
			} else {
				fmt.Fprintf(c.out, "Returned %s\n", args[0])
			}
			return c.printBorrows(cmd, "")
		},
	}
	cmd.Flags().StringVar((*string)(&req.Method), "method", "", "fine payment method: cash, card or online")
	return cmd
}

func (c *console) printBorrows(cmd *cobra.Command, userID string) error {
	if userID != "" {
		borrows, err := c.circulation.UserBorrows(cmd.Context(), c.sess, userID)
		if err != nil {
			return err
		}
		return printBorrows(c.out, borrows)
	}
	page, err := c.circulation.BorrowPage(cmd.Context(), c.sess)
	if err != nil {
		return err
	}
	return printBorrows(c.out, page.Borrows)
}

func (c *console) finesCmd() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "fines",
		Short: "Fine payments and borrows waiting for one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				page model.FinesPage
				err  error
			)
			if userID != "" {
				page, err = c.circulation.UserFines(cmd.Context(), c.sess, userID)
			} else {
				page, err = c.circulation.FinesPage(cmd.Context(), c.sess)
			}
			if err != nil {
				return err
			}
			printWarnings(c.out, page.Warnings)
			fmt.Fprintln(c.out, "Payments")
			if err := printPayments(c.out, page.Payments); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "\nOutstanding")
			return printBorrows(c.out, page.Outstanding)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "member id")
	return cmd
}

func (c *console) reservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "Hold and release books",
	}
	cmd.AddCommand(c.reservationsListCmd(), c.reservationsReserveCmd(), c.reservationsCancelCmd())
	return cmd
}

func (c *console) reservationsListCmd() *cobra.Command {
	var userID, status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Reservations with per-status counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printReservations(cmd, userID, libapi.ReservationStatus(status))
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "member id")
	cmd.Flags().StringVar(&status, "status", "", "active, completed or cancelled")
	return cmd
}

func (c *console) reservationsReserveCmd() *cobra.Command {
	var req model.ReserveBookRequest
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Hold a book for a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := c.reservation.Reserve(cmd.Context(), c.sess, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Reserved %s until %s\n", r.ID, date(r.ExpiryDate))
			return c.printReservations(cmd, "", "")
		},
	}
	cmd.Flags().StringVar(&req.UserID, "user", "", "member id")
	cmd.Flags().StringVar(&req.BookID, "book", "", "book id")
	return cmd
}

func (c *console) reservationsCancelCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "cancel RESERVATION_ID",
		Short: "Cancel an active reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.CancelReservationRequest{Confirm: yes}
			if !req.Confirm {
				req.Confirm = c.confirm(fmt.Sprintf("Cancel reservation %s?", args[0]))
			}
			if !req.Confirm {
				fmt.Fprintln(c.out, "Aborted")
				return nil
			}
			if _, err := c.reservation.Cancel(cmd.Context(), c.sess, args[0], req); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Cancelled %s\n", args[0])
			return c.printReservations(cmd, "", "")
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation")
	return cmd
}

func (c *console) printReservations(cmd *cobra.Command, userID string, status libapi.ReservationStatus) error {
	var (
		page model.ReservationsPage
		err  error
	)
	if userID != "" {
		page, err = c.reservation.UserPage(cmd.Context(), c.sess, userID, status)
	} else {
		page, err = c.reservation.Page(cmd.Context(), c.sess, status)
	}
	if err != nil {
		return err
	}
	return printReservations(c.out, page)
}
