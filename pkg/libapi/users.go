package libapi

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListUsers(ctx context.Context, sess *Session) ([]User, error) {
	var resp payload[[]User]
	if err := c.do(ctx, sess, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) SearchUsers(ctx context.Context, sess *Session, name string) ([]User, error) {
	var resp payload[[]User]
	path := withQuery("/users/search", url.Values{"name": {name}})
	if err := c.do(ctx, sess, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

// Me returns the signed-in user.
func (c *Client) Me(ctx context.Context, sess *Session) (User, error) {
	var resp payload[User]
	if err := c.do(ctx, sess, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return User{}, err
	}
	return resp.get(), nil
}

func (c *Client) UpdateUser(ctx context.Context, sess *Session, id string, in UserUpdate) (User, error) {
	var resp payload[User]
	if err := c.do(ctx, sess, http.MethodPut, pathf("/users/%s", id), in, &resp); err != nil {
		return User{}, err
	}
	return resp.get(), nil
}
