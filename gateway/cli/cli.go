// Package cli is the command line console: the gateway's workflows run
// straight against the library API, with the session kept in a file.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Astemirdum/library-console/gateway/internal/service/catalog"
	"github.com/Astemirdum/library-console/gateway/internal/service/circulation"
	"github.com/Astemirdum/library-console/gateway/internal/service/member"
	"github.com/Astemirdum/library-console/gateway/internal/service/overview"
	"github.com/Astemirdum/library-console/gateway/internal/service/reservation"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type Options struct {
	API         libapi.Config
	SessionFile string
	Log         *zap.Logger
	In          io.Reader
	Out         io.Writer
	// ReadPassword reads a secret without echo; defaults to the terminal.
	ReadPassword func() (string, error)
}

type console struct {
	opts  Options
	out   io.Writer
	in    *bufio.Reader
	store sessionStore

	sess        *libapi.Session
	catalog     *catalog.Service
	member      *member.Service
	circulation *circulation.Service
	reservation *reservation.Service
	overview    *overview.Service
}

// Execute runs one console command. The session file is rewritten after
// every command, also failed ones, so cleared credentials stay cleared.
func Execute(ctx context.Context, opts Options, args []string) error {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ReadPassword == nil {
		opts.ReadPassword = terminalPassword
	}
	c := &console{
		opts: opts,
		out:  opts.Out,
		in:   bufio.NewReader(opts.In),
	}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.Out)

	err := root.ExecuteContext(ctx)
	if c.sess != nil {
		if serr := c.store.save(c.sess.Cookies()); serr != nil {
			opts.Log.Warn("save session", zap.Error(serr))
		}
	}
	return err
}

func (c *console) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "libctl",
		Short:         "Library management console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open()
		},
	}
	root.PersistentFlags().StringVar(&c.opts.API.BaseURL, "api", c.opts.API.BaseURL, "library API base URL")
	root.PersistentFlags().StringVar(&c.opts.SessionFile, "session-file", c.opts.SessionFile, "file keeping the session cookies")

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.dashboardCmd(),
		c.homeCmd(),
		c.booksCmd(),
		c.reviewsCmd(),
		c.usersCmd(),
		c.borrowsCmd(),
		c.finesCmd(),
		c.reservationsCmd(),
	)
	return root
}

func (c *console) open() error {
	api, err := libapi.New(c.opts.API, c.opts.Log)
	if err != nil {
		return err
	}
	c.store = sessionStore{path: c.opts.SessionFile}
	cookies, err := c.store.load()
	if err != nil {
		return errors.Wrap(err, "load session")
	}
	c.sess = libapi.NewSession(cookies...)

	log := c.opts.Log
	c.catalog = catalog.NewService(log, api)
	c.member = member.NewService(log, api)
	c.circulation = circulation.NewService(log, api)
	c.reservation = reservation.NewService(log, api)
	c.overview = overview.NewService(log, api)
	return nil
}

// confirm asks a yes/no question; anything but y or yes is a no.
func (c *console) confirm(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, _ := c.in.ReadString('\n') //nolint:errcheck
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func terminalPassword() (string, error) {
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
