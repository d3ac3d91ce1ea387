package libapi

import (
	"context"
	"net/http"
)

// BorrowHistory lists every borrow, newest first as the API orders them.
func (c *Client) BorrowHistory(ctx context.Context, sess *Session) ([]Borrow, error) {
	var resp payload[[]Borrow]
	if err := c.do(ctx, sess, http.MethodGet, "/borrows/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) GetBorrow(ctx context.Context, sess *Session, id string) (Borrow, error) {
	var resp payload[Borrow]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/borrows/%s", id), nil, &resp); err != nil {
		return Borrow{}, err
	}
	return resp.get(), nil
}

func (c *Client) UserBorrows(ctx context.Context, sess *Session, userID string) ([]Borrow, error) {
	var resp payload[[]Borrow]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/borrows/user/%s", userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

// OutstandingBorrows lists borrows the API considers unsettled.
func (c *Client) OutstandingBorrows(ctx context.Context, sess *Session) ([]Borrow, error) {
	var resp payload[[]Borrow]
	if err := c.do(ctx, sess, http.MethodGet, "/borrows/outstanding", nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) UserOutstandingBorrows(ctx context.Context, sess *Session, userID string) ([]Borrow, error) {
	var resp payload[[]Borrow]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/borrows/user/outstanding/%s", userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) IssueBook(ctx context.Context, sess *Session, in IssueBook) (Borrow, error) {
	var resp payload[Borrow]
	if err := c.do(ctx, sess, http.MethodPost, "/borrows", in, &resp); err != nil {
		return Borrow{}, err
	}
	return resp.get(), nil
}

// MarkReturned closes a borrow that carries no fine.
func (c *Client) MarkReturned(ctx context.Context, sess *Session, id string) (Borrow, error) {
	var resp payload[Borrow]
	body := struct {
		Status BorrowStatus `json:"status"`
	}{Status: BorrowReturned}
	if err := c.do(ctx, sess, http.MethodPatch, pathf("/borrows/%s", id), body, &resp); err != nil {
		return Borrow{}, err
	}
	return resp.get(), nil
}
