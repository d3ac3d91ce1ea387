package libapi

import (
	"context"
	"net/http"
)

func (c *Client) FineHistory(ctx context.Context, sess *Session) ([]FinePayment, error) {
	var resp payload[[]FinePayment]
	if err := c.do(ctx, sess, http.MethodGet, "/fines/history", nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) UserFines(ctx context.Context, sess *Session, userID string) ([]FinePayment, error) {
	var resp payload[[]FinePayment]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/fines/user/%s", userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

// PayFine settles the fine of a borrow and returns it in one request.
func (c *Client) PayFine(ctx context.Context, sess *Session, in PayFine) (FinePayment, error) {
	var resp payload[FinePayment]
	if err := c.do(ctx, sess, http.MethodPost, "/fines/pay-fine", in, &resp); err != nil {
		return FinePayment{}, err
	}
	return resp.get(), nil
}
