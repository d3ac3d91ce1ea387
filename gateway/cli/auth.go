package cli

import (
	"fmt"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/spf13/cobra"
)

func (c *console) loginCmd() *cobra.Command {
	var req model.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				fmt.Fprint(c.out, "Password: ")
				pw, err := c.opts.ReadPassword()
				fmt.Fprintln(c.out)
				if err != nil {
					return err
				}
				req.Password = pw
			}
			user, err := c.member.Login(cmd.Context(), c.sess, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password, prompted when empty")
	return cmd
}

func (c *console) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.member.Logout(cmd.Context(), c.sess); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Signed out")
			return nil
		},
	}
}

func (c *console) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.member.Me(cmd.Context(), c.sess)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%s <%s> %s id=%s\n", user.Name, user.Email, user.Role, user.ID)
			return nil
		},
	}
}
