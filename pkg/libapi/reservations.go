package libapi

import (
	"context"
	"net/http"
	"net/url"
)

func statusQuery(status ReservationStatus) url.Values {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	return q
}

// ListReservations lists all reservations, optionally of one status.
func (c *Client) ListReservations(ctx context.Context, sess *Session, status ReservationStatus) ([]Reservation, error) {
	var resp payload[[]Reservation]
	if err := c.do(ctx, sess, http.MethodGet, withQuery("/reservations", statusQuery(status)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) UserReservations(ctx context.Context, sess *Session, userID string, status ReservationStatus) ([]Reservation, error) {
	var resp payload[[]Reservation]
	path := withQuery(pathf("/reservations/user/%s", userID), statusQuery(status))
	if err := c.do(ctx, sess, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) GetReservation(ctx context.Context, sess *Session, id string) (Reservation, error) {
	var resp payload[Reservation]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/reservations/%s", id), nil, &resp); err != nil {
		return Reservation{}, err
	}
	return resp.get(), nil
}

func (c *Client) Reserve(ctx context.Context, sess *Session, in ReserveBook) (Reservation, error) {
	var resp payload[Reservation]
	if err := c.do(ctx, sess, http.MethodPost, "/reservations", in, &resp); err != nil {
		return Reservation{}, err
	}
	return resp.get(), nil
}

func (c *Client) CancelReservation(ctx context.Context, sess *Session, id string) (Reservation, error) {
	var resp payload[Reservation]
	if err := c.do(ctx, sess, http.MethodPatch, pathf("/reservations/%s/cancel", id), nil, &resp); err != nil {
		return Reservation{}, err
	}
	return resp.get(), nil
}
