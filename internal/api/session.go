package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// storedCookie is the subset of cookie fields worth persisting between runs.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Domain  string    `json:"domain,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// SessionStore is a file-based store for the admin session cookies, so a
// login survives process restarts.
type SessionStore struct {
	Path string
}

// NewSessionStore creates a new SessionStore with the given path.
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{Path: path}
}

// Save writes the session cookies to the file at store.Path.
func (store *SessionStore) Save(cookies []*http.Cookie) error {
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Domain:  c.Domain,
			Expires: c.Expires,
		})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(store.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load reads session cookies from the file at store.Path.
// Returns nil, nil if the file does not exist (no error).
func (store *SessionStore) Load() ([]*http.Cookie, error) {
	data, err := os.ReadFile(store.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		cookies = append(cookies, &http.Cookie{
			Name:    s.Name,
			Value:   s.Value,
			Path:    s.Path,
			Domain:  s.Domain,
			Expires: s.Expires,
		})
	}

	return cookies, nil
}

// Clear removes the session file. A missing file is not an error.
func (store *SessionStore) Clear() error {
	if err := os.Remove(store.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Login authenticates against POST /api/login. On success the session cookie
// set by the server is persisted through the session store.
func (c *Client) Login(ctx context.Context, password string) error {
	payload := map[string]string{"password": password}

	var out struct {
		envelope
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/login", payload, &out); err != nil {
		return err
	}

	return c.persistSession()
}

// Logout ends the session via POST /api/logout and clears the stored session.
func (c *Client) Logout(ctx context.Context) error {
	var out struct {
		envelope
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/logout", nil, &out); err != nil {
		return err
	}

	if c.sessions != nil {
		return c.sessions.Clear()
	}
	return nil
}

// HasSession probes GET /api/admin/bookings to check whether an admin session
// is already active, mirroring how the admin page decides between the login
// form and the panel.
func (c *Client) HasSession(ctx context.Context) bool {
	_, err := c.ListAdminBookings(ctx)
	return err == nil
}

func (c *Client) persistSession() error {
	if c.sessions == nil {
		return nil
	}
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	return c.sessions.Save(c.httpClient.Jar.Cookies(u))
}
