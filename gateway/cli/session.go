package cli

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// sessionStore keeps the session cookies between console runs.
// An empty path keeps nothing.
type sessionStore struct {
	path string
}

func (s sessionStore) load() ([]*http.Cookie, error) {
	if s.path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrapf(err, "parse %s", s.path)
	}
	now := time.Now()
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		if !sc.Expires.IsZero() && sc.Expires.Before(now) {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: sc.Name, Value: sc.Value, Path: sc.Path, Expires: sc.Expires})
	}
	return cookies, nil
}

func (s sessionStore) save(cookies []*http.Cookie) error {
	if s.path == "" {
		return nil
	}
	if len(cookies) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	stored := make([]storedCookie, 0, len(cookies))
	for _, ck := range cookies {
		stored = append(stored, storedCookie{Name: ck.Name, Value: ck.Value, Path: ck.Path, Expires: ck.Expires})
	}
	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
