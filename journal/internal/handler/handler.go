package handler

import (
	"net/http"

	"github.com/Astemirdum/library-console/journal/internal/errs"
	"github.com/Astemirdum/library-console/journal/internal/model"
	md "github.com/Astemirdum/library-console/pkg/middleware"
	"github.com/Astemirdum/library-console/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	journalSvc JournalService
	log        *zap.Logger
}

func New(journalSvc JournalService, log *zap.Logger) *Handler {
	return &Handler{
		journalSvc: journalSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/journal", h.Entries)
	api.GET("/journal/stats", h.Counts)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

type entriesQuery struct {
	Type  string `query:"type"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=500"`
}

func (h *Handler) Entries(c echo.Context) error {
	var q entriesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit must be a number")
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrLimit.Error())
	}

	journal, err := h.journalSvc.Entries(c.Request().Context(), model.Filter{Type: q.Type, Limit: q.Limit})
	if errors.Is(err, errs.ErrLimit) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		h.log.Error("journal entries", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, journal)
}

func (h *Handler) Counts(c echo.Context) error {
	counts, err := h.journalSvc.Counts(c.Request().Context())
	if err != nil {
		h.log.Error("journal counts", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}
