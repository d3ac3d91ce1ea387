package handler

import (
	"net/http"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListBooks(c echo.Context) error {
	return h.bookView(c, http.StatusOK)
}

func (h *Handler) SearchBooks(c echo.Context) error {
	books, err := h.catalogSvc.SearchBooks(c.Request().Context(), session(c), c.QueryParam("title"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.catalogSvc.GetBook(c.Request().Context(), session(c), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), session(c), req)
	if err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventBookCreated, BookID: book.ID})
	return h.bookView(c, http.StatusCreated)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	id := c.Param("id")
	if _, err := h.catalogSvc.UpdateBook(c.Request().Context(), session(c), id, req); err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventBookUpdated, BookID: id})
	return h.bookView(c, http.StatusOK)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id := c.Param("id")
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), session(c), id); err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventBookDeleted, BookID: id})
	return h.bookView(c, http.StatusOK)
}

func (h *Handler) ListReviews(c echo.Context) error {
	return h.reviewView(c, http.StatusOK)
}

func (h *Handler) CreateReview(c echo.Context) error {
	var req model.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	review, err := h.catalogSvc.CreateReview(c.Request().Context(), session(c), req)
	if err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.Event{Type: kafka.EventReviewCreated, UserID: req.UserID, BookID: req.BookID, Amount: float64(review.Rating)})
	return h.reviewView(c, http.StatusCreated)
}
