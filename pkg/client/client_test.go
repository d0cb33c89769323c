package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hostelhut/hostelhut/pkg/domain"
	"github.com/hostelhut/hostelhut/pkg/session"
)

// newTestSession returns a store seeded with the given token pair.
func newTestSession(t *testing.T, access, refresh string) *session.Store {
	t.Helper()
	s, err := session.NewStore(session.NewMemoryStorage())
	if err != nil {
		t.Fatal(err)
	}
	if access != "" || refresh != "" {
		if err := s.SetSession(access, refresh, nil); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestAuthHeaderIsRawToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, domain.User{FirstName: "Asha"})
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t, "acc-1", "ref-1"))
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me() error: %v", err)
	}
	// The raw token is the header value — no "Bearer " scheme.
	if gotAuth != "acc-1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "acc-1")
	}
}

func TestLogoutAuthenticatesWithRefreshToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/logout" {
			http.NotFound(w, r)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
	}))
	defer srv.Close()

	sess := newTestSession(t, "acc-1", "ref-1")
	c := New(srv.URL, sess)
	if err := c.Logout(context.Background(), sess.RefreshToken()); err != nil {
		t.Fatalf("Logout() error: %v", err)
	}
	// The access token must never leak onto the skip path.
	if gotAuth != "ref-1" {
		t.Errorf("Authorization = %q, want refresh token %q", gotAuth, "ref-1")
	}
}

func TestRefreshRetryOn401(t *testing.T) {
	var refreshCalls, meCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/me":
			atomic.AddInt32(&meCalls, 1)
			if r.Header.Get("Authorization") != "acc-new" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
				return
			}
			writeJSON(w, http.StatusOK, domain.User{FirstName: "Asha"})
		case "/api/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			if r.Header.Get("Authorization") != "ref-old" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "bad refresh token"})
				return
			}
			writeJSON(w, http.StatusOK, domain.AuthPayload{AccessToken: "acc-new", RefreshToken: "ref-new"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	sess := newTestSession(t, "acc-old", "ref-old")
	c := New(srv.URL, sess)

	user, err := c.Me(context.Background())
	if err != nil {
		t.Fatalf("Me() error: %v", err)
	}
	if user.FirstName != "Asha" {
		t.Errorf("FirstName = %q, want %q", user.FirstName, "Asha")
	}
	if n := atomic.LoadInt32(&refreshCalls); n != 1 {
		t.Errorf("refresh calls = %d, want 1", n)
	}
	// Original request + exactly one retry.
	if n := atomic.LoadInt32(&meCalls); n != 2 {
		t.Errorf("me calls = %d, want 2", n)
	}
	if got := sess.AccessToken(); got != "acc-new" {
		t.Errorf("stored access token = %q, want %q", got, "acc-new")
	}
	if got := sess.RefreshToken(); got != "ref-new" {
		t.Errorf("stored refresh token = %q, want %q", got, "ref-new")
	}
}

func TestNoRefreshTokenClearsSession(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "not authenticated"})
	}))
	defer srv.Close()

	sess := newTestSession(t, "acc-stale", "")
	c := New(srv.URL, sess)
	expired := false
	c.OnSessionExpired(func() { expired = true })

	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatal("expected error for unrecoverable 401")
	}
	if !IsStatus(err, 401) {
		t.Errorf("error = %v, want HTTP 401", err)
	}
	if atomic.LoadInt32(&refreshCalls) != 0 {
		t.Error("refresh endpoint called despite missing refresh token")
	}
	if sess.IsAuthenticated() {
		t.Error("session still authenticated after unrecoverable 401")
	}
	if sess.AccessToken() != "" || sess.RefreshToken() != "" {
		t.Errorf("tokens = %q/%q, want both cleared", sess.AccessToken(), sess.RefreshToken())
	}
	if !expired {
		t.Error("session-expired callback not fired")
	}
}

func TestRefreshFailureClearsSession(t *testing.T) {
	var meCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/me":
			atomic.AddInt32(&meCalls, 1)
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
		case "/api/auth/refresh":
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "refresh token expired"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	sess := newTestSession(t, "acc-old", "ref-dead")
	c := New(srv.URL, sess)
	expired := false
	c.OnSessionExpired(func() { expired = true })

	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatal("expected error when refresh fails")
	}
	if !strings.Contains(err.Error(), "refresh token expired") {
		t.Errorf("error = %v, want refresh failure message", err)
	}
	// No retry after a failed refresh.
	if n := atomic.LoadInt32(&meCalls); n != 1 {
		t.Errorf("me calls = %d, want 1", n)
	}
	if sess.IsAuthenticated() {
		t.Error("session still authenticated after failed refresh")
	}
	if !expired {
		t.Error("session-expired callback not fired")
	}
}

func TestConcurrent401sCoalesceIntoOneRefresh(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/me":
			if r.Header.Get("Authorization") != "acc-new" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
				return
			}
			writeJSON(w, http.StatusOK, domain.User{FirstName: "Asha"})
		case "/api/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			// Hold the refresh open long enough for every 401 to pile up
			// behind it.
			time.Sleep(200 * time.Millisecond)
			writeJSON(w, http.StatusOK, domain.AuthPayload{AccessToken: "acc-new", RefreshToken: "ref-new"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	sess := newTestSession(t, "acc-old", "ref-old")
	c := New(srv.URL, sess)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Me(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("worker %d: Me() error: %v", i, err)
		}
	}
	if n := atomic.LoadInt32(&refreshCalls); n != 1 {
		t.Errorf("refresh calls = %d, want 1", n)
	}
}

func TestErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Email already registered"})
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t, "", ""))
	_, err := c.Register(context.Background(), RegisterRequest{Email: "a@b.co"})
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	if !strings.Contains(err.Error(), "Email already registered") {
		t.Errorf("error = %v, want server message", err)
	}
}

func TestErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t, "", ""))
	_, err := c.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "pw"})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "Login failed") {
		t.Errorf("error = %v, want fallback message", err)
	}
}

func TestDoRequestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(5 * time.Second) // slow server
		writeJSON(w, http.StatusOK, domain.User{})
	}))
	defer srv.Close()

	c := New(srv.URL, newTestSession(t, "acc", "ref"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	_, err := c.Me(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}
