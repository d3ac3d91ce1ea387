package libapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/library-console/pkg/circuit_breaker"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const tokenCookie = "accessToken"

func newClient(t *testing.T, srv *httptest.Server, opts ...libapi.Option) *libapi.Client {
	t.Helper()
	c, err := libapi.New(libapi.Config{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second}, zap.NewNop(), opts...)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func token(r *http.Request) string {
	c, err := r.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func TestClient_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	t.Parallel()
	const callers = 8
	var (
		refreshCalls atomic.Int32
		rejected     atomic.Int32
		allRejected  = make(chan struct{})
		once         sync.Once
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		<-allRejected
		http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: "fresh", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]string{"message": "refreshed"})
	})
	mux.HandleFunc("/api/books/all", func(w http.ResponseWriter, r *http.Request) {
		if token(r) != "fresh" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
			if rejected.Add(1) == callers {
				once.Do(func() { close(allRejected) })
			}
			return
		}
		writeJSON(w, http.StatusOK, []libapi.Book{{ID: "b1", Title: "Dune", TotalCopies: 2, AvailableCopies: 1}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv)
	sess := libapi.NewSession(&http.Cookie{Name: tokenCookie, Value: "stale"})

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			books, err := c.ListBooks(context.Background(), sess)
			if err == nil && len(books) != 1 {
				err = errUnexpected
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.EqualValues(t, 1, refreshCalls.Load())
	require.Len(t, sess.Renewed(), 1)
	require.Equal(t, "fresh", sess.Cookies()[0].Value)
}

type sentinel string

func (s sentinel) Error() string { return string(s) }

const errUnexpected = sentinel("unexpected payload")

func TestClient_FailedRefreshExpiresSession(t *testing.T) {
	t.Parallel()
	var refreshCalls, bookCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "refresh token expired"})
	})
	mux.HandleFunc("/api/books/all", func(w http.ResponseWriter, r *http.Request) {
		bookCalls.Add(1)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "jwt expired"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv)
	sess := libapi.NewSession(&http.Cookie{Name: tokenCookie, Value: "stale"})

	_, err := c.ListBooks(context.Background(), sess)
	require.ErrorIs(t, err, libapi.ErrSessionExpired)
	require.Equal(t, http.StatusUnauthorized, libapi.StatusCode(err))
	require.Empty(t, sess.Cookies())

	// an expired session fails fast without another refresh
	_, err = c.ListBooks(context.Background(), sess)
	require.ErrorIs(t, err, libapi.ErrSessionExpired)
	require.EqualValues(t, 1, refreshCalls.Load())
	require.EqualValues(t, 2, bookCalls.Load())
}

func TestClient_SecondUnauthorizedIsReturned(t *testing.T) {
	t.Parallel()
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeJSON(w, http.StatusOK, map[string]string{})
	})
	mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "not allowed"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv)
	_, err := c.Me(context.Background(), libapi.NewSession())

	var apiErr *libapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "not allowed", libapi.Message(err))
	require.EqualValues(t, 1, refreshCalls.Load())
}

func TestClient_LoginDoesNotRefresh(t *testing.T) {
	t.Parallel()
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds libapi.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: "t1", Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]string{"_id": "u1", "name": "Ann", "email": "ann@example.com", "role": "librarian"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newClient(t, srv)
	sess := libapi.NewSession()

	_, err := c.Login(context.Background(), sess, libapi.Credentials{Email: "ann@example.com", Password: "wrong"})
	require.EqualError(t, err, "Invalid credentials")

	user, err := c.Login(context.Background(), sess, libapi.Credentials{Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, libapi.RoleLibrarian, user.Role)
	require.Equal(t, "t1", sess.Cookies()[0].Value)
	require.Zero(t, refreshCalls.Load())
}

func TestClient_ErrorNormalization(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name: "message field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"message": "No copies available"})
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "No copies available",
		},
		{
			name: "error field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "Book not found"})
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Book not found",
		},
		{
			name: "plain text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte("already reserved\n"))
			},
			wantStatus: http.StatusConflict,
			wantMsg:    "already reserved",
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newClient(t, srv).GetBook(context.Background(), nil, "b1")
			require.Error(t, err)
			require.Equal(t, tt.wantStatus, libapi.StatusCode(err))
			require.Equal(t, tt.wantMsg, libapi.Message(err))
		})
	}
}

func TestClient_BreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusBadGateway, map[string]string{"message": "upstream down"})
	}))
	defer srv.Close()

	cb := circuit_breaker.New(2, time.Minute, 1, 1)
	c := newClient(t, srv, libapi.WithCircuitBreaker(cb))

	for i := 0; i < 2; i++ {
		_, err := c.ListUsers(context.Background(), nil)
		require.Equal(t, http.StatusBadGateway, libapi.StatusCode(err))
	}
	_, err := c.ListUsers(context.Background(), nil)
	require.ErrorIs(t, err, libapi.ErrUnavailable)
	require.Equal(t, http.StatusServiceUnavailable, libapi.StatusCode(err))
	require.EqualValues(t, 2, calls.Load())
}

func TestClient_ClientErrorsKeepBreakerClosed(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Reservation not found"})
	}))
	defer srv.Close()

	c, err := libapi.New(libapi.Config{BaseURL: srv.URL}, zap.NewNop())
	require.NoError(t, err)
	for i := 0; i < 150; i++ {
		_, err := c.GetReservation(context.Background(), nil, "r1")
		require.Equal(t, http.StatusNotFound, libapi.StatusCode(err))
	}
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	t.Parallel()
	_, err := libapi.New(libapi.Config{BaseURL: "ftp://library"}, zap.NewNop())
	require.Error(t, err)
}
