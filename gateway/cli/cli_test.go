package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLibrary struct {
	mu    sync.Mutex
	calls []string
	srv   *httptest.Server
}

func (f *fakeLibrary) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
}

func (f *fakeLibrary) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newFakeLibrary(t *testing.T) *fakeLibrary {
	t.Helper()
	f := &fakeLibrary{}
	mux := http.NewServeMux()
	reply := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if ck, err := r.Cookie("accessToken"); err != nil || ck.Value != "a1" {
				f.record(r)
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"not signed in"}`))
				return
			}
			next(w, r)
		}
	}
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		http.SetCookie(w, &http.Cookie{Name: "accessToken", Value: "a1", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "r1", Path: "/"})
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","name":"Ann","email":"ann@lib.io","role":"librarian"}}`))
	})
	mux.HandleFunc("GET /api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("GET /api/users/me", authed(reply(`{"_id":"u1","name":"Ann","email":"ann@lib.io","role":"librarian"}`)))
	mux.HandleFunc("GET /api/books/all", authed(reply(`[{"_id":"b1","title":"Dune","author":"Herbert","totalCopies":3,"availableCopies":2}]`)))
	mux.HandleFunc("GET /api/reservations/{id}", authed(reply(`{"_id":"r1","status":"active"}`)))
	mux.HandleFunc("PATCH /api/reservations/{id}/cancel", authed(reply(`{"_id":"r1","status":"cancelled"}`)))
	mux.HandleFunc("GET /api/reservations", authed(reply(`[{"_id":"r1","status":"cancelled","bookId":{"_id":"b1","title":"Dune"}}]`)))
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func run(t *testing.T, f *fakeLibrary, sessionFile, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Execute(context.Background(), Options{
		API:          libapi.Config{BaseURL: f.srv.URL + "/api"},
		SessionFile:  sessionFile,
		In:           strings.NewReader(input),
		Out:          &out,
		ReadPassword: func() (string, error) { return "secret", nil },
	}, args)
	return out.String(), err
}

func TestLoginKeepsSessionAcrossRuns(t *testing.T) {
	t.Parallel()
	f := newFakeLibrary(t)
	sessionFile := filepath.Join(t.TempDir(), "libctl", "session.json")

	out, err := run(t, f, sessionFile, "", "login", "--email", "ann@lib.io")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ann (librarian)")

	info, err := os.Stat(sessionFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err = run(t, f, sessionFile, "", "books", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "2/3")
}

func TestExpiredSessionIsForgotten(t *testing.T) {
	t.Parallel()
	f := newFakeLibrary(t)
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(sessionFile,
		[]byte(`[{"name":"accessToken","value":"stale"},{"name":"refreshToken","value":"stale"}]`), 0o600))

	_, err := run(t, f, sessionFile, "", "whoami")
	require.ErrorIs(t, err, libapi.ErrSessionExpired)

	_, err = os.Stat(sessionFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIssueRejectsLoanLengthWithoutCallingAPI(t *testing.T) {
	t.Parallel()
	f := newFakeLibrary(t)

	_, err := run(t, f, "", "", "borrows", "issue", "--user", "u1", "--book", "b1", "--days", "61")
	require.Error(t, err)
	assert.Empty(t, f.called())
}

func TestCancelReservationConfirmation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		args       []string
		wantOut    string
		wantCancel bool
	}{
		{
			name:    "declined",
			input:   "n\n",
			args:    []string{"reservations", "cancel", "r1"},
			wantOut: "Aborted",
		},
		{
			name:       "confirmed at the prompt",
			input:      "y\n",
			args:       []string{"reservations", "cancel", "r1"},
			wantOut:    "cancelled: 1",
			wantCancel: true,
		},
		{
			name:       "confirmed by flag",
			args:       []string{"reservations", "cancel", "r1", "--yes"},
			wantOut:    "Cancelled r1",
			wantCancel: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFakeLibrary(t)
			sessionFile := filepath.Join(t.TempDir(), "session.json")
			_, err := run(t, f, sessionFile, "", "login", "--email", "ann@lib.io")
			require.NoError(t, err)

			out, err := run(t, f, sessionFile, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
			assert.Equal(t, tt.wantCancel, contains(f.called(), "PATCH /api/reservations/r1/cancel"))
		})
	}
}

func contains(calls []string, call string) bool {
	for _, c := range calls {
		if c == call {
			return true
		}
	}
	return false
}
