package libapi

import (
	"context"
	"net/http"
)

const loginPath = "/auth/login"

// Login signs in and stores the issued cookies in sess.
func (c *Client) Login(ctx context.Context, sess *Session, creds Credentials) (User, error) {
	var resp payload[User]
	if err := c.do(ctx, sess, http.MethodPost, loginPath, creds, &resp); err != nil {
		return User{}, err
	}
	return resp.get(), nil
}

func (c *Client) Logout(ctx context.Context, sess *Session) error {
	if err := c.do(ctx, sess, http.MethodPost, "/auth/logout", struct{}{}, nil); err != nil {
		return err
	}
	sess.Clear()
	return nil
}

func (c *Client) Register(ctx context.Context, sess *Session, in UserCreate) (User, error) {
	var resp payload[User]
	if err := c.do(ctx, sess, http.MethodPost, "/users/register", in, &resp); err != nil {
		return User{}, err
	}
	return resp.get(), nil
}
