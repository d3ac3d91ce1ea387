package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *console) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Library statistics and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := c.overview.Dashboard(cmd.Context(), c.sess)
			if err != nil {
				return err
			}
			printWarnings(c.out, d.Warnings)
			if s := d.Stats; s != nil {
				fmt.Fprintf(c.out, "books: %d  members: %d  active borrows: %d  pending reservations: %d  fines: %s\n",
					s.TotalBooks, s.TotalCustomers, s.ActiveBorrows, s.PendingReservations, money(s.TotalFines))
			}
			return printActivities(c.out, d.Activities)
		},
	}
}

func (c *console) homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home USER_ID",
		Short: "A member's statistics and recent activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.overview.MemberHome(cmd.Context(), c.sess, args[0])
			if err != nil {
				return err
			}
			printWarnings(c.out, h.Warnings)
			if s := h.Stats; s != nil {
				fmt.Fprintf(c.out, "active borrows: %d  reservations: %d  fines: %s  borrowed in total: %d\n",
					s.ActiveBorrows, s.Reservations, money(s.Fines), s.TotalBorrowed)
			}
			return printActivities(c.out, h.Activities)
		},
	}
}
