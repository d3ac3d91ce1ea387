package handler

import (
	"net/http"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const sessionKey = "session"

// sessionMW forwards the caller's cookies to the library API and relays
// any cookie the API renewed back to the caller.
func sessionMW(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := libapi.NewSession(c.Cookies()...)
		c.Set(sessionKey, sess)
		c.Response().Before(func() {
			for _, ck := range sess.Renewed() {
				ck.Domain = ""
				if ck.Path == "" {
					ck.Path = "/"
				}
				c.SetCookie(ck)
			}
		})

		req := c.Request()
		if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
			c.SetRequest(req.WithContext(libapi.WithRequestID(req.Context(), id)))
		}
		return next(c)
	}
}

func session(c echo.Context) *libapi.Session {
	sess, ok := c.Get(sessionKey).(*libapi.Session)
	if !ok {
		return libapi.NewSession(c.Cookies()...)
	}
	return sess
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// httpError maps workflow and upstream errors to the status the caller sees.
func httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrConfirmRequired):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotCancellable), errors.Is(err, errs.ErrAlreadyReturned):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrPaymentRequired):
		code = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrJournal):
		code = http.StatusServiceUnavailable
	default:
		if status := libapi.StatusCode(err); status != 0 {
			code = status
		}
	}
	return echo.NewHTTPError(code, libapi.Message(err))
}

func bindError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return echo.NewHTTPError(http.StatusBadRequest, he.Message)
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
