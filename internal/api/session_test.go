package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	cookies := []*http.Cookie{{Name: "session", Value: "abc123", Path: "/"}}
	if err := store.Save(cookies); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(store.Path)
	if err != nil {
		t.Fatalf("session file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("session file permissions = %o, want 0600", perm)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "session" || loaded[0].Value != "abc123" {
		t.Errorf("unexpected cookies %+v", loaded)
	}
}

func TestSessionStoreLoadMissingFile(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "nope.json"))

	cookies, err := store.Load()
	if err != nil {
		t.Fatalf("a missing session file must not be an error, got %v", err)
	}
	if cookies != nil {
		t.Errorf("expected no cookies, got %+v", cookies)
	}
}

func TestSessionStoreClear(t *testing.T) {
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save([]*http.Cookie{{Name: "session", Value: "x"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(store.Path); !os.IsNotExist(err) {
		t.Error("session file still exists after Clear")
	}

	// Clearing again must be a no-op.
	if err := store.Clear(); err != nil {
		t.Errorf("clearing a missing file must not fail, got %v", err)
	}
}

func TestLoginPersistsSessionAcrossClients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "secret", Path: "/"})
			w.Write([]byte(`{"ok":true}`))
		case "/api/admin/bookings":
			cookie, err := r.Cookie("session")
			if err != nil || cookie.Value != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"ok":false,"error":"Ej inloggad"}`))
				return
			}
			w.Write([]byte(`{"ok":true,"items":[]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))

	first, err := NewClient(server.URL, store, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if first.HasSession(context.Background()) {
		t.Fatal("fresh client must not have a session")
	}
	if err := first.Login(context.Background(), "hemligt"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// A new client process picks the session up from the store.
	second, err := NewClient(server.URL, store, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if !second.HasSession(context.Background()) {
		t.Error("stored session was not restored into the new client")
	}
}

func TestLogoutClearsStoredSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save([]*http.Cookie{{Name: "session", Value: "secret"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	client, err := NewClient(server.URL, store, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if err := client.Logout(context.Background()); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := os.Stat(store.Path); !os.IsNotExist(err) {
		t.Error("session file must be removed on logout")
	}
}
