package libapi

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const refreshKey = "refresh"

// Session holds the cookie credentials of one signed-in user. It is safe for
// concurrent use; concurrent refreshes of the same session share one call.
type Session struct {
	mu      sync.Mutex
	cookies map[string]*http.Cookie
	renewed map[string]*http.Cookie
	gen     uint64
	expired bool

	flight singleflight.Group
}

func NewSession(cookies ...*http.Cookie) *Session {
	s := &Session{
		cookies: make(map[string]*http.Cookie, len(cookies)),
		renewed: make(map[string]*http.Cookie),
	}
	for _, c := range cookies {
		s.cookies[c.Name] = c
	}
	return s
}

// Cookies returns the credentials currently held, ordered by name.
func (s *Session) Cookies() []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedCookies(s.cookies)
}

// Renewed returns cookies set or deleted by the API since the session was
// created, for relaying back to the user agent.
func (s *Session) Renewed() []*http.Cookie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedCookies(s.renewed)
}

// Clear drops every credential and remembers the deletions as renewed.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, c := range s.cookies {
		s.renewed[name] = &http.Cookie{Name: name, Path: c.Path, MaxAge: -1}
	}
	s.cookies = make(map[string]*http.Cookie)
}

func (s *Session) attach(req *http.Request) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	return s.gen
}

func (s *Session) absorb(cookies []*http.Cookie) {
	if len(cookies) == 0 {
		return
	}
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range cookies {
		s.renewed[c.Name] = c
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(now)) {
			delete(s.cookies, c.Name)
			continue
		}
		s.cookies[c.Name] = c
		s.expired = false
	}
}

func (s *Session) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Session) finishRefresh(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.expired = true
		return
	}
	s.gen++
}

func (s *Session) isExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// refresh renews the session unless a refresh already completed after the
// caller's request was sent (seen is the generation the request carried).
func (s *Session) refresh(ctx context.Context, c *Client, seen uint64) error {
	if s.isExpired() {
		return ErrSessionExpired
	}
	if s.generation() != seen {
		return nil
	}
	ch := s.flight.DoChan(refreshKey, func() (interface{}, error) {
		if s.generation() != seen {
			return nil, nil
		}
		err := c.refresh(context.WithoutCancel(ctx), s)
		s.finishRefresh(err)
		return nil, err
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sortedCookies(m map[string]*http.Cookie) []*http.Cookie {
	out := make([]*http.Cookie, 0, len(m))
	for _, c := range m {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
