package handler

import (
	"net/http"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/labstack/echo/v4"
)

func (h *Handler) BorrowPage(c echo.Context) error {
	return h.borrowView(c, http.StatusOK)
}

func (h *Handler) UserBorrows(c echo.Context) error {
	borrows, err := h.circulationSvc.UserBorrows(c.Request().Context(), session(c), c.Param("userId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, borrows)
}

func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueBookRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	borrow, err := h.circulationSvc.Issue(c.Request().Context(), session(c), req)
	if err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventBorrowIssued, UserID: req.UserID, BookID: req.BookID, BorrowID: borrow.ID})
	return h.borrowView(c, http.StatusCreated)
}

// ReturnBook closes a borrow; one carrying a fine needs {"method": ...}.
func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnBookRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	id := c.Param("id")
	res, err := h.circulationSvc.Return(c.Request().Context(), session(c), id, req)
	if err != nil {
		return httpError(err)
	}
	switch {
	case res.Payment != nil:
		h.publish(c, kafka.Event{
			Type:     kafka.EventFinePaid,
			UserID:   userID(res.Payment.User),
			BorrowID: id,
			Amount:   res.Payment.Amount,
			Method:   string(res.Payment.Method),
		})
	case res.Borrow != nil:
		h.publish(c, kafka.Event{
			Type:     kafka.EventBorrowReturned,
			UserID:   userID(res.Borrow.User),
			BookID:   bookID(res.Borrow.Book),
			BorrowID: id,
		})
	}
	return h.borrowView(c, http.StatusOK)
}

func (h *Handler) FinesPage(c echo.Context) error {
	page, err := h.circulationSvc.FinesPage(c.Request().Context(), session(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) UserFines(c echo.Context) error {
	page, err := h.circulationSvc.UserFines(c.Request().Context(), session(c), c.Param("userId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Reservations(c echo.Context) error {
	page, err := h.reservationSvc.Page(c.Request().Context(), session(c), libapi.ReservationStatus(c.QueryParam("status")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) UserReservations(c echo.Context) error {
	page, err := h.reservationSvc.UserPage(c.Request().Context(), session(c), c.Param("userId"), libapi.ReservationStatus(c.QueryParam("status")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *Handler) Reserve(c echo.Context) error {
	var req model.ReserveBookRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	rsv, err := h.reservationSvc.Reserve(c.Request().Context(), session(c), req)
	if err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventReservationCreated, UserID: req.UserID, BookID: req.BookID, ReservationID: rsv.ID})
	return h.reservationView(c, http.StatusCreated)
}

// CancelReservation needs {"confirm": true}.
func (h *Handler) CancelReservation(c echo.Context) error {
	var req model.CancelReservationRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	id := c.Param("id")
	rsv, err := h.reservationSvc.Cancel(c.Request().Context(), session(c), id, req)
	if err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventReservationCancelled, UserID: userID(rsv.User), BookID: bookID(rsv.Book), ReservationID: id})
	return h.reservationView(c, http.StatusOK)
}
