package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/gateway/internal/service/catalog"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, updates chan<- map[string]any) *catalog.Service {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/books/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		updates <- in
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"book": map[string]any{"_id": r.PathValue("id"), "title": in["title"]}})
	})
	mux.HandleFunc("GET /api/books/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]libapi.Book{{ID: "b1", Title: r.URL.Query().Get("title")}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	api, err := libapi.New(libapi.Config{BaseURL: srv.URL + "/api"}, zap.NewNop())
	require.NoError(t, err)
	return catalog.NewService(zap.NewNop(), api)
}

func validBook() model.BookRequest {
	return model.BookRequest{
		Title:           "Dune",
		Author:          "Frank Herbert",
		ISBN:            "9780441013593",
		Publisher:       "Chilton",
		Genre:           "Science fiction",
		PublicationYear: 1965,
		TotalCopies:     3,
		ShelfLocation:   "A3",
		Summary:         "Spice and sand.",
	}
}

func TestService_UpdateBook(t *testing.T) {
	t.Parallel()
	updates := make(chan map[string]any, 1)
	svc := newService(t, updates)

	book, err := svc.UpdateBook(context.Background(), libapi.NewSession(), "b1", validBook())
	require.NoError(t, err)
	require.Equal(t, "b1", book.ID)
	require.Equal(t, "Dune", book.Title)

	sent := <-updates
	require.NotContains(t, sent, "isbn")
	require.NotContains(t, sent, "availableCopies")
	require.EqualValues(t, 3, sent["totalCopies"])
}

func TestService_BookValidation(t *testing.T) {
	t.Parallel()
	svc := newService(t, make(chan map[string]any, 1))
	tests := []struct {
		name   string
		mutate func(b *model.BookRequest)
		msg    string
	}{
		{"short title", func(b *model.BookRequest) { b.Title = "D" }, "title must be at least 2 characters"},
		{"short summary", func(b *model.BookRequest) { b.Summary = "ok" }, "summary must be at least 5 characters"},
		{"no copies", func(b *model.BookRequest) { b.TotalCopies = 0 }, "totalCopies must be at least 1"},
		{"no shelf", func(b *model.BookRequest) { b.ShelfLocation = "" }, "shelfLocation is required"},
	}
	for _, tt := range tests {
		req := validBook()
		tt.mutate(&req)
		_, err := svc.CreateBook(context.Background(), libapi.NewSession(), req)
		require.ErrorIs(t, err, errs.ErrValidation, tt.name)
		require.EqualError(t, err, tt.msg, tt.name)
	}
}

func TestService_CreateReviewValidation(t *testing.T) {
	t.Parallel()
	svc := newService(t, make(chan map[string]any, 1))

	_, err := svc.CreateReview(context.Background(), libapi.NewSession(), model.ReviewRequest{BookID: "b1", Rating: 6, Review: "great"})
	require.EqualError(t, err, "rating must be at most 5")
	_, err = svc.CreateReview(context.Background(), libapi.NewSession(), model.ReviewRequest{BookID: "b1", Rating: 0, Review: "great"})
	require.EqualError(t, err, "rating must be at least 1")
}

func TestService_SearchBooks(t *testing.T) {
	t.Parallel()
	svc := newService(t, make(chan map[string]any, 1))

	books, err := svc.SearchBooks(context.Background(), libapi.NewSession(), "dune messiah")
	require.NoError(t, err)
	require.Equal(t, "dune messiah", books[0].Title)
}
