package libapi

import (
	"context"
	"net/http"
)

func (c *Client) ListReviews(ctx context.Context, sess *Session) ([]Review, error) {
	var resp payload[[]Review]
	if err := c.do(ctx, sess, http.MethodGet, "/reviews/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) CreateReview(ctx context.Context, sess *Session, in ReviewInput) (Review, error) {
	var resp payload[Review]
	if err := c.do(ctx, sess, http.MethodPost, "/reviews", in, &resp); err != nil {
		return Review{}, err
	}
	return resp.get(), nil
}
