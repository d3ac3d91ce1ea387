package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/handler"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-console/gateway/internal/handler/mocks"
)

type mocks struct {
	catalog     *service_mocks.MockCatalogService
	member      *service_mocks.MockMemberService
	circulation *service_mocks.MockCirculationService
	reservation *service_mocks.MockReservationService
	overview    *service_mocks.MockOverviewService
	journal     *service_mocks.MockJournalService
	activity    *service_mocks.MockActivityLog
}

func newHandler(t *testing.T) (http.Handler, mocks) {
	t.Helper()
	c := gomock.NewController(t)
	m := mocks{
		catalog:     service_mocks.NewMockCatalogService(c),
		member:      service_mocks.NewMockMemberService(c),
		circulation: service_mocks.NewMockCirculationService(c),
		reservation: service_mocks.NewMockReservationService(c),
		overview:    service_mocks.NewMockOverviewService(c),
		journal:     service_mocks.NewMockJournalService(c),
		activity:    service_mocks.NewMockActivityLog(c),
	}
	h := handler.New(zap.NewNop(), handler.Services{
		Catalog:     m.catalog,
		Member:      m.member,
		Circulation: m.circulation,
		Reservation: m.reservation,
		Overview:    m.overview,
		Journal:     m.journal,
	}, m.activity)
	return h.NewRouter(), m
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	router, _ := newHandler(t)
	w := do(router, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_IssueBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(m mocks)

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"userId":"u1","bookId":"b1","days":14}`,
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().
					Issue(gomock.Any(), gomock.Any(), model.IssueBookRequest{UserID: "u1", BookID: "b1", Days: 14}).
					Return(libapi.Borrow{ID: "br1"}, nil)
				m.activity.EXPECT().Log(gomock.Any()).Do(func(e kafka.Event) {
					require.Equal(t, kafka.EventBorrowIssued, e.Type)
					require.Equal(t, "br1", e.BorrowID)
					require.NotEmpty(t, e.RequestID)
				})
				m.circulation.EXPECT().BorrowPage(gomock.Any(), gomock.Any()).
					Return(model.BorrowPage{Borrows: []model.BorrowView{}, Users: []libapi.User{}, Books: []libapi.Book{}}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"borrows":[],"users":[],"books":[]}`,
		},
		{
			name: "err. validation",
			body: `{"userId":"u1","bookId":"b1","days":61}`,
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(libapi.Borrow{}, errs.Invalid(errors.New("days must be at most 60")))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"days must be at most 60"}`,
		},
		{
			name: "err. api",
			body: `{"userId":"u1","bookId":"b1","days":7}`,
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(libapi.Borrow{}, &libapi.APIError{Status: http.StatusBadRequest, Message: "No copies available"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"No copies available"}`,
		},
		{
			name: "err. session expired",
			body: `{"userId":"u1","bookId":"b1","days":7}`,
			mockBehavior: func(m mocks) {
				m.circulation.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(libapi.Borrow{}, libapi.ErrSessionExpired)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"session expired, please log in again"}`,
		},
		{
			name:         "err. malformed body",
			body:         `{"days":"many"}`,
			mockBehavior: func(m mocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router, m := newHandler(t)
			tt.mockBehavior(m)

			w := do(router, http.MethodPost, "/api/v1/borrows", tt.body)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		body         string
		err          error
		result       model.ReturnResult
		event        kafka.EventType
		expectedCode int
	}{
		{
			name:         "returned",
			result:       model.ReturnResult{Borrow: &libapi.Borrow{ID: "br1", Status: libapi.BorrowReturned, User: &libapi.User{ID: "u1"}}},
			event:        kafka.EventBorrowReturned,
			expectedCode: http.StatusOK,
		},
		{
			name:         "fine paid",
			body:         `{"method":"cash"}`,
			result:       model.ReturnResult{Payment: &libapi.FinePayment{ID: "p1", Amount: 5, Method: libapi.PaymentCash}},
			event:        kafka.EventFinePaid,
			expectedCode: http.StatusOK,
		},
		{
			name:         "payment required",
			err:          errs.ErrPaymentRequired,
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "already returned",
			err:          errs.ErrAlreadyReturned,
			expectedCode: http.StatusConflict,
		},
		{
			name:         "api unavailable",
			err:          libapi.ErrUnavailable,
			expectedCode: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router, m := newHandler(t)
			m.circulation.EXPECT().Return(gomock.Any(), gomock.Any(), "br1", gomock.Any()).Return(tt.result, tt.err)
			if tt.err == nil {
				m.activity.EXPECT().Log(gomock.Any()).Do(func(e kafka.Event) {
					require.Equal(t, tt.event, e.Type)
					require.Equal(t, "br1", e.BorrowID)
				})
				m.circulation.EXPECT().BorrowPage(gomock.Any(), gomock.Any()).Return(model.BorrowPage{}, nil)
			}

			w := do(router, http.MethodPost, "/api/v1/borrows/br1/return", tt.body)
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.err != nil {
				require.Contains(t, w.Body.String(), `"message"`)
			}
		})
	}
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		body         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{name: "ok", body: `{"confirm":true}`, expectedCode: http.StatusOK},
		{name: "not confirmed", body: "", err: errs.ErrConfirmRequired, expectedCode: http.StatusBadRequest, expectedBody: `{"message":"cancellation must be confirmed"}`},
		{name: "not active", body: `{"confirm":true}`, err: errs.ErrNotCancellable, expectedCode: http.StatusConflict, expectedBody: `{"message":"only active reservations can be cancelled"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router, m := newHandler(t)
			confirm := tt.body != ""
			m.reservation.EXPECT().
				Cancel(gomock.Any(), gomock.Any(), "r1", model.CancelReservationRequest{Confirm: confirm}).
				Return(libapi.Reservation{ID: "r1", Status: libapi.ReservationCancelled}, tt.err)
			if tt.err == nil {
				m.activity.EXPECT().Log(gomock.Any())
				m.reservation.EXPECT().Page(gomock.Any(), gomock.Any(), libapi.ReservationStatus("")).
					Return(model.ReservationsPage{Reservations: []libapi.Reservation{}, Counts: model.ReservationCounts{Cancelled: 1}}, nil)
			}

			w := do(router, http.MethodPost, "/api/v1/reservations/r1/cancel", tt.body)
			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()
	router, m := newHandler(t)
	m.overview.EXPECT().Dashboard(gomock.Any(), gomock.Any()).Return(model.Dashboard{
		Activities: []libapi.Activity{{Type: libapi.ActivityReturn, User: "Ann", Book: "Dune", Time: "1 hour ago"}},
		Warnings:   []string{"stats unavailable"},
	}, nil)

	w := do(router, http.MethodGet, "/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"activities":[{"type":"return","user":"Ann","book":"Dune","time":"1 hour ago"}],"warnings":["stats unavailable"]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Journal(t *testing.T) {
	t.Parallel()
	router, m := newHandler(t)

	w := do(router, http.MethodGet, "/api/v1/journal?limit=abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	m.journal.EXPECT().Entries(gomock.Any(), "fine_paid", 10).Return(model.Journal{}, errs.ErrJournal)
	w = do(router, http.MethodGet, "/api/v1/journal?type=fine_paid&limit=10", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, `{"message":"journal service unavailable"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_SessionCookies(t *testing.T) {
	t.Parallel()
	router, m := newHandler(t)
	m.member.EXPECT().Me(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, sess *libapi.Session) (libapi.User, error) {
			cookies := sess.Cookies()
			require.Len(t, cookies, 1)
			require.Equal(t, "stale", cookies[0].Value)
			sess.Clear()
			return libapi.User{}, libapi.ErrSessionExpired
		})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", http.NoBody)
	r.AddCookie(&http.Cookie{Name: "accessToken", Value: "stale"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	setCookie := w.Header().Get("Set-Cookie")
	require.Contains(t, setCookie, "accessToken=")
	require.Contains(t, setCookie, "Max-Age=0")
}
