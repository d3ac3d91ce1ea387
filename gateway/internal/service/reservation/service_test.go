package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/gateway/internal/service/reservation"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func newService(t *testing.T) (*reservation.Service, *atomic.Int32) {
	t.Helper()
	reservations := map[string]libapi.Reservation{
		"r-active":    {ID: "r-active", Status: libapi.ReservationActive},
		"r-completed": {ID: "r-completed", Status: libapi.ReservationCompleted},
		"r-cancelled": {ID: "r-cancelled", Status: libapi.ReservationCancelled},
	}
	var cancels atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/reservations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []libapi.Reservation{
			reservations["r-active"], reservations["r-completed"], reservations["r-cancelled"],
		}})
	})
	mux.HandleFunc("GET /api/reservations/{id}", func(w http.ResponseWriter, r *http.Request) {
		rsv, ok := reservations[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "Reservation not found"})
			return
		}
		writeJSON(w, http.StatusOK, rsv)
	})
	mux.HandleFunc("PATCH /api/reservations/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		cancels.Add(1)
		rsv := reservations[r.PathValue("id")]
		rsv.Status = libapi.ReservationCancelled
		writeJSON(w, http.StatusOK, map[string]any{"reservation": rsv})
	})
	mux.HandleFunc("POST /api/reservations", func(w http.ResponseWriter, r *http.Request) {
		var in libapi.ReserveBook
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeJSON(w, http.StatusCreated, libapi.Reservation{ID: "r-new", Book: &libapi.Book{ID: in.BookID}, Status: libapi.ReservationActive})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api, err := libapi.New(libapi.Config{BaseURL: srv.URL + "/api"}, zap.NewNop())
	require.NoError(t, err)
	return reservation.NewService(zap.NewNop(), api), &cancels
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		id          string
		confirm     bool
		wantErr     error
		wantCancels int32
	}{
		{name: "active", id: "r-active", confirm: true, wantCancels: 1},
		{name: "not confirmed", id: "r-active", confirm: false, wantErr: errs.ErrConfirmRequired},
		{name: "completed", id: "r-completed", confirm: true, wantErr: errs.ErrNotCancellable},
		{name: "cancelled", id: "r-cancelled", confirm: true, wantErr: errs.ErrNotCancellable},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, cancels := newService(t)

			rsv, err := svc.Cancel(context.Background(), libapi.NewSession(), tt.id, model.CancelReservationRequest{Confirm: tt.confirm})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, libapi.ReservationCancelled, rsv.Status)
			}
			require.Equal(t, tt.wantCancels, cancels.Load())
		})
	}
}

func TestService_Reserve(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.Reserve(context.Background(), libapi.NewSession(), model.ReserveBookRequest{UserID: "u1"})
	require.ErrorIs(t, err, errs.ErrValidation)
	require.EqualError(t, err, "bookId is required")

	rsv, err := svc.Reserve(context.Background(), libapi.NewSession(), model.ReserveBookRequest{UserID: "u1", BookID: "b7"})
	require.NoError(t, err)
	require.Equal(t, "b7", rsv.Book.ID)
}

func TestService_Page(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	page, err := svc.Page(context.Background(), libapi.NewSession(), libapi.ReservationActive)
	require.NoError(t, err)
	require.Len(t, page.Reservations, 1)
	require.Equal(t, model.ReservationCounts{Active: 1, Completed: 1, Cancelled: 1}, page.Counts)

	_, err = svc.Page(context.Background(), libapi.NewSession(), "expired")
	require.ErrorIs(t, err, errs.ErrValidation)
}
