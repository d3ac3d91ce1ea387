package cli

import (
	"fmt"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *console) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage library accounts",
	}
	cmd.AddCommand(c.usersListCmd(), c.usersAddCmd(), c.usersUpdateCmd())
	return cmd
}

func (c *console) usersListCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts, optionally filtered by name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := c.member.ListUsers(cmd.Context(), c.sess, query)
			if err != nil {
				return err
			}
			return printUsers(c.out, users)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "name or email fragment")
	return cmd
}

func (c *console) usersAddCmd() *cobra.Command {
	req := model.UserCreateRequest{Role: libapi.RoleMember}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				fmt.Fprint(c.out, "Password for the new account: ")
				pw, err := c.opts.ReadPassword()
				fmt.Fprintln(c.out)
				if err != nil {
					return err
				}
				req.Password = pw
			}
			u, err := c.member.CreateUser(cmd.Context(), c.sess, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Registered %s (%s)\n", u.Name, u.ID)
			return c.printAccounts(cmd)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Address, "address", "", "postal address")
	fs.StringVar((*string)(&req.Role), "role", string(libapi.RoleMember), "member or librarian")
	fs.StringVar(&req.Password, "password", "", "initial password, prompted when empty")
	return cmd
}

var errUnknownUser = errors.New("no such account")

// usersUpdateCmd starts from the listed account; only the given flags change it.
func (c *console) usersUpdateCmd() *cobra.Command {
	var req model.UserUpdateRequest
	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Edit an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.member.ListUsers(cmd.Context(), c.sess, "")
			if err != nil {
				return err
			}
			var merged *model.UserUpdateRequest
			for _, u := range users {
				if u.ID == args[0] {
					merged = &model.UserUpdateRequest{Name: u.Name, Phone: u.Phone, Address: u.Address, Role: u.Role}
					break
				}
			}
			if merged == nil {
				return errors.Wrap(errUnknownUser, args[0])
			}
			fs := cmd.Flags()
			overlay(fs, "name", &merged.Name, req.Name)
			overlay(fs, "phone", &merged.Phone, req.Phone)
			overlay(fs, "address", &merged.Address, req.Address)
			overlay(fs, "role", &merged.Role, req.Role)

			u, err := c.member.UpdateUser(cmd.Context(), c.sess, args[0], *merged)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Updated %s (%s)\n", u.Name, u.ID)
			return c.printAccounts(cmd)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Address, "address", "", "postal address")
	fs.StringVar((*string)(&req.Role), "role", "", "member or librarian")
	return cmd
}

func (c *console) printAccounts(cmd *cobra.Command) error {
	users, err := c.member.ListUsers(cmd.Context(), c.sess, "")
	if err != nil {
		return err
	}
	return printUsers(c.out, users)
}
