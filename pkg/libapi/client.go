package libapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Astemirdum/library-console/pkg/circuit_breaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	refreshPath = "/auth/refresh"

	headerRequestID = "X-Request-Id"
	mimeJSON        = "application/json"
)

type Config struct {
	BaseURL string        `yaml:"baseURL" envconfig:"LIBRARY_API_URL" default:"http://localhost:5000/api"`
	Timeout time.Duration `yaml:"timeout" envconfig:"LIBRARY_API_TIMEOUT" default:"30s"`
}

type Option func(c *Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

func WithCircuitBreaker(cb circuit_breaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.cb = cb
	}
}

// Client talks to the library REST API. Calls that carry a Session are
// retried once after a silent refresh when the API answers 401.
type Client struct {
	base string
	hc   *http.Client
	cb   circuit_breaker.CircuitBreaker
	log  *zap.Logger
}

func New(cfg Config, log *zap.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		base: strings.TrimRight(u.String(), "/"),
		hc:   &http.Client{Timeout: timeout},
		cb:   circuit_breaker.New(100, 5*time.Second, 0.2, 2, circuit_breaker.WithFailure(isUpstreamFailure)),
		log:  log.Named("libapi"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type requestIDKey struct{}

// WithRequestID tags outgoing calls made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// only transport errors and 5xx answers count against the breaker
func isUpstreamFailure(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return !errors.Is(err, ErrSessionExpired) &&
		!errors.Is(err, context.Canceled)
}

func (c *Client) do(ctx context.Context, sess *Session, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = data
	}
	err := c.cb.Call(func() error {
		return c.exchange(ctx, sess, method, path, body, out)
	})
	if errors.Is(err, circuit_breaker.ErrOpenCB) {
		return ErrUnavailable
	}
	return err
}

func (c *Client) exchange(ctx context.Context, sess *Session, method, path string, body []byte, out any) error {
	resp, gen, err := c.send(ctx, sess, method, path, body)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized && sess != nil && path != refreshPath && path != loginPath {
		drainClose(resp)
		if err := sess.refresh(ctx, c, gen); err != nil {
			return err
		}
		if resp, _, err = c.send(ctx, sess, method, path, body); err != nil {
			return err
		}
	}
	defer drainClose(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		return readAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}

func (c *Client) send(ctx context.Context, sess *Session, method, path string, body []byte) (*http.Response, uint64, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, 0, errors.Wrap(err, "new request")
	}
	req.Header.Set("Accept", mimeJSON)
	if body != nil {
		req.Header.Set("Content-Type", mimeJSON)
	}
	if id := requestID(ctx); id != "" {
		req.Header.Set(headerRequestID, id)
	}
	var gen uint64
	if sess != nil {
		gen = sess.attach(req)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "%s %s", method, path)
	}
	if sess != nil {
		sess.absorb(resp.Cookies())
	}
	return resp, gen, nil
}

func (c *Client) refresh(ctx context.Context, sess *Session) error {
	resp, _, err := c.send(ctx, sess, http.MethodGet, refreshPath, nil)
	if err != nil {
		c.log.Warn("session refresh", zap.Error(err))
		sess.Clear()
		return ErrSessionExpired
	}
	defer drainClose(resp)
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := readAPIError(resp)
		c.log.Info("session refresh rejected", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
		sess.Clear()
		return ErrSessionExpired
	}
	c.log.Debug("session refreshed")
	return nil
}

func drainClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10)) //nolint:errcheck
	_ = resp.Body.Close()
}

func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}

func withQuery(path string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
