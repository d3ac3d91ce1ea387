package libapi

import (
	"context"
	"net/http"
)

func (c *Client) AdminStats(ctx context.Context, sess *Session) (DashboardStats, error) {
	var resp payload[DashboardStats]
	if err := c.do(ctx, sess, http.MethodGet, "/admin/stats", nil, &resp); err != nil {
		return DashboardStats{}, err
	}
	return resp.get(), nil
}

func (c *Client) RecentActivities(ctx context.Context, sess *Session) ([]Activity, error) {
	var resp payload[[]Activity]
	if err := c.do(ctx, sess, http.MethodGet, "/admin/recent-activities", nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}

func (c *Client) MemberStats(ctx context.Context, sess *Session, userID string) (MemberStats, error) {
	var resp payload[MemberStats]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/member/stats/%s", userID), nil, &resp); err != nil {
		return MemberStats{}, err
	}
	return resp.get(), nil
}

func (c *Client) MemberActivities(ctx context.Context, sess *Session, userID string) ([]Activity, error) {
	var resp payload[[]Activity]
	if err := c.do(ctx, sess, http.MethodGet, pathf("/member/recent-activities/%s", userID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.get(), nil
}
