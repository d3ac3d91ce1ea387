package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	_ "github.com/Astemirdum/library-console/gateway/swagger"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/libapi"
	md "github.com/Astemirdum/library-console/pkg/middleware"
	"github.com/Astemirdum/library-console/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Services struct {
	Catalog     CatalogService
	Member      MemberService
	Circulation CirculationService
	Reservation ReservationService
	Overview    OverviewService
	Journal     JournalService
}

type Handler struct {
	catalogSvc     CatalogService
	memberSvc      MemberService
	circulationSvc CirculationService
	reservationSvc ReservationService
	overviewSvc    OverviewService
	journalSvc     JournalService
	activity       ActivityLog
	log            *zap.Logger
}

func New(log *zap.Logger, svc Services, activity ActivityLog) *Handler {
	return &Handler{
		catalogSvc:     svc.Catalog,
		memberSvc:      svc.Member,
		circulationSvc: svc.Circulation,
		reservationSvc: svc.Reservation,
		overviewSvc:    svc.Overview,
		journalSvc:     svc.Journal,
		activity:       activity,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		sessionMW,
	)
	h.routes(api)
	return e
}

func (h *Handler) routes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)

	api.GET("/dashboard", h.Dashboard)
	api.GET("/home/:userId", h.MemberHome)

	api.GET("/books", h.ListBooks)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	api.GET("/users", h.ListUsers)
	api.GET("/users/search", h.SearchUsers)
	api.GET("/users/me", h.Me)
	api.POST("/users", h.CreateUser)
	api.PUT("/users/:id", h.UpdateUser)

	api.GET("/borrows", h.BorrowPage)
	api.GET("/borrows/user/:userId", h.UserBorrows)
	api.POST("/borrows", h.IssueBook)
	api.POST("/borrows/:id/return", h.ReturnBook)

	api.GET("/fines", h.FinesPage)
	api.GET("/fines/user/:userId", h.UserFines)

	api.GET("/reservations", h.Reservations)
	api.GET("/reservations/user/:userId", h.UserReservations)
	api.POST("/reservations", h.Reserve)
	api.POST("/reservations/:id/cancel", h.CancelReservation)

	api.GET("/reviews", h.ListReviews)
	api.POST("/reviews", h.CreateReview)

	api.GET("/journal", h.Journal)
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) publish(c echo.Context, event kafka.Event) {
	event.RequestID = requestID(c)
	h.activity.Log(event)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	user, err := h.memberSvc.Login(c.Request().Context(), session(c), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.memberSvc.Logout(c.Request().Context(), session(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.overviewSvc.Dashboard(c.Request().Context(), session(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) MemberHome(c echo.Context) error {
	home, err := h.overviewSvc.MemberHome(c.Request().Context(), session(c), c.Param("userId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, home)
}

func (h *Handler) Journal(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}
	journal, err := h.journalSvc.Entries(c.Request().Context(), c.QueryParam("type"), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, journal)
}

// borrowView answers a circulation mutation with the refreshed borrow page.
func (h *Handler) borrowView(c echo.Context, code int) error {
	page, err := h.circulationSvc.BorrowPage(c.Request().Context(), session(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(code, page)
}

func (h *Handler) reservationView(c echo.Context, code int) error {
	page, err := h.reservationSvc.Page(c.Request().Context(), session(c), "")
	if err != nil {
		return httpError(err)
	}
	return c.JSON(code, page)
}

func (h *Handler) bookView(c echo.Context, code int) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context(), session(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(code, books)
}

func (h *Handler) userView(c echo.Context, code int) error {
	users, err := h.memberSvc.ListUsers(c.Request().Context(), session(c), "")
	if err != nil {
		return httpError(err)
	}
	return c.JSON(code, users)
}

func (h *Handler) reviewView(c echo.Context, code int) error {
	reviews, err := h.catalogSvc.ListReviews(c.Request().Context(), session(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(code, reviews)
}

func userID(u *libapi.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}

func bookID(b *libapi.Book) string {
	if b == nil {
		return ""
	}
	return b.ID
}
