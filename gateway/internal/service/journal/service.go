package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Astemirdum/library-console/gateway/config"
	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/circuit_breaker"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Service reads the activity journal kept by the journal service.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.JournalHTTPServer) *Service {
	return &Service{
		log:     log.Named("journal"),
		client:  &http.Client{Timeout: time.Minute},
		baseURL: fmt.Sprintf("http://%s", net.JoinHostPort(cfg.Host, cfg.Port)),
		cb:      circuit_breaker.New(100, time.Second, 0.2, 2, circuit_breaker.WithFailure(isUpstreamFailure)),
	}
}

// only an unreachable journal or a 5xx answer counts against the breaker
func isUpstreamFailure(err error) bool {
	var apiErr *libapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) Entries(ctx context.Context, eventType string, limit int) (model.Journal, error) {
	q := url.Values{}
	if eventType != "" {
		q.Set("type", eventType)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := s.baseURL + "/api/v1/journal"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	var journal model.Journal
	err := s.cb.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", echo.MIMEApplicationJSON)
		resp, err := s.client.Do(req)
		if err != nil {
			s.log.Warn("journal request", zap.Error(err))
			return errs.ErrJournal
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			var body errs.ErrorResponse
			_ = json.NewDecoder(resp.Body).Decode(&body) //nolint:errcheck
			if body.Message == "" {
				body.Message = http.StatusText(resp.StatusCode)
			}
			return &libapi.APIError{Status: resp.StatusCode, Message: body.Message}
		}
		return errors.Wrap(json.NewDecoder(resp.Body).Decode(&journal), "decode journal")
	})
	if errors.Is(err, circuit_breaker.ErrOpenCB) {
		return model.Journal{}, errs.ErrJournal
	}
	if err != nil {
		return model.Journal{}, err
	}
	if journal.Entries == nil {
		journal.Entries = []model.JournalEntry{}
	}
	return journal, nil
}
