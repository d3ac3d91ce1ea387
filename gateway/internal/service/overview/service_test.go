package overview_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Astemirdum/library-console/gateway/internal/service/overview"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func newService(t *testing.T, statsDown, activitiesDown bool) *overview.Service {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/stats", func(w http.ResponseWriter, r *http.Request) {
		if statsDown {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "stats unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, libapi.DashboardStats{TotalBooks: 120, TotalCustomers: 40, ActiveBorrows: 9, PendingReservations: 3, TotalFines: 15.5})
	})
	mux.HandleFunc("GET /api/admin/recent-activities", func(w http.ResponseWriter, r *http.Request) {
		if activitiesDown {
			writeJSON(w, http.StatusBadGateway, map[string]string{"message": "activities unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"recentActivities": []libapi.Activity{
			{Type: libapi.ActivityBorrow, User: "Ann", Book: "Dune", Time: "2 hours ago"},
		}})
	})
	mux.HandleFunc("GET /api/member/stats/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, libapi.MemberStats{ActiveBorrows: 2, Reservations: 1, Fines: 3, TotalBorrowed: 11})
	})
	mux.HandleFunc("GET /api/member/recent-activities/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"activities": []libapi.Activity{
			{Type: libapi.ActivityFinePayment, User: "Ann", Amount: 3, Time: "yesterday"},
		}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api, err := libapi.New(libapi.Config{BaseURL: srv.URL + "/api"}, zap.NewNop())
	require.NoError(t, err)
	return overview.NewService(zap.NewNop(), api)
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		statsDown      bool
		activitiesDown bool
		wantStats      bool
		wantActivities int
		wantWarnings   []string
		wantErr        string
	}{
		{name: "all loaded", wantStats: true, wantActivities: 1},
		{name: "stats down", statsDown: true, wantActivities: 1, wantWarnings: []string{"stats unavailable"}},
		{name: "activities down", activitiesDown: true, wantStats: true, wantWarnings: []string{"activities unavailable"}},
		{name: "both down", statsDown: true, activitiesDown: true, wantErr: "stats unavailable"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newService(t, tt.statsDown, tt.activitiesDown)

			d, err := svc.Dashboard(context.Background(), libapi.NewSession())
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStats, d.Stats != nil)
			if tt.wantStats {
				require.Equal(t, 120, d.Stats.TotalBooks)
			}
			require.Len(t, d.Activities, tt.wantActivities)
			require.Equal(t, tt.wantWarnings, d.Warnings)
		})
	}
}

func TestService_MemberHome(t *testing.T) {
	t.Parallel()
	svc := newService(t, false, false)

	home, err := svc.MemberHome(context.Background(), libapi.NewSession(), "u1")
	require.NoError(t, err)
	require.NotNil(t, home.Stats)
	require.Equal(t, 11, home.Stats.TotalBorrowed)
	require.Len(t, home.Activities, 1)
	require.Equal(t, libapi.ActivityFinePayment, home.Activities[0].Type)
}
