package session

import (
	"testing"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

func TestSetSessionPersistsTokens(t *testing.T) {
	storage := NewMemoryStorage()
	s, err := NewStore(storage)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}

	user := &domain.User{FirstName: "Asha", Email: "asha@hut.co"}
	if err := s.SetSession("acc-1", "ref-1", user); err != nil {
		t.Fatalf("SetSession() error: %v", err)
	}

	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after SetSession")
	}
	if got, _ := storage.Get(KeyAccessToken); got != "acc-1" {
		t.Errorf("persisted access token = %q, want %q", got, "acc-1")
	}
	if got, _ := storage.Get(KeyRefreshToken); got != "ref-1" {
		t.Errorf("persisted refresh token = %q, want %q", got, "ref-1")
	}
	if s.User() == nil || s.User().FirstName != "Asha" {
		t.Errorf("User() = %+v, want Asha", s.User())
	}
}

func TestUpdateTokensLastWriteWins(t *testing.T) {
	storage := NewMemoryStorage()
	s, err := NewStore(storage)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	if err := s.SetSession("acc-1", "ref-1", &domain.User{FirstName: "Asha"}); err != nil {
		t.Fatalf("SetSession() error: %v", err)
	}

	pairs := [][2]string{{"acc-2", "ref-2"}, {"acc-3", "ref-3"}, {"acc-4", "ref-4"}}
	for _, p := range pairs {
		if err := s.UpdateTokens(p[0], p[1]); err != nil {
			t.Fatalf("UpdateTokens(%q) error: %v", p[0], err)
		}
	}

	if got := s.AccessToken(); got != "acc-4" {
		t.Errorf("AccessToken() = %q, want %q", got, "acc-4")
	}
	if got, _ := storage.Get(KeyAccessToken); got != "acc-4" {
		t.Errorf("persisted access token = %q, want %q", got, "acc-4")
	}
	if got, _ := storage.Get(KeyRefreshToken); got != "ref-4" {
		t.Errorf("persisted refresh token = %q, want %q", got, "ref-4")
	}
	// UpdateTokens leaves the user untouched.
	if s.User() == nil || s.User().FirstName != "Asha" {
		t.Errorf("User() = %+v, want Asha preserved", s.User())
	}
}

func TestClearResetsEverything(t *testing.T) {
	storage := NewMemoryStorage()
	s, err := NewStore(storage)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	if err := s.SetSession("acc-1", "ref-1", &domain.User{FirstName: "Asha"}); err != nil {
		t.Fatalf("SetSession() error: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after Clear")
	}
	if s.AccessToken() != "" || s.RefreshToken() != "" {
		t.Errorf("tokens = %q/%q after Clear, want empty", s.AccessToken(), s.RefreshToken())
	}
	if s.User() != nil {
		t.Errorf("User() = %+v after Clear, want nil", s.User())
	}
	if got, _ := storage.Get(KeyAccessToken); got != "" {
		t.Errorf("persisted access token = %q after Clear, want empty", got)
	}
}

func TestNewStoreReconstructsFromStorage(t *testing.T) {
	storage := NewMemoryStorage()
	if err := storage.Set(KeyAccessToken, "acc-old"); err != nil {
		t.Fatal(err)
	}
	if err := storage.Set(KeyRefreshToken, "ref-old"); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(storage)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated() = false, want true from persisted tokens")
	}
	if got := s.AccessToken(); got != "acc-old" {
		t.Errorf("AccessToken() = %q, want %q", got, "acc-old")
	}
	if got := s.RefreshToken(); got != "ref-old" {
		t.Errorf("RefreshToken() = %q, want %q", got, "ref-old")
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage() error: %v", err)
	}

	// Absent key reads as empty.
	if got, err := fs.Get(KeyAccessToken); err != nil || got != "" {
		t.Errorf("Get(absent) = %q, %v, want empty, nil", got, err)
	}

	if err := fs.Set(KeyAccessToken, "tok-123"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got, _ := fs.Get(KeyAccessToken); got != "tok-123" {
		t.Errorf("Get() = %q, want %q", got, "tok-123")
	}

	// A second storage over the same dir sees the value.
	fs2, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage() error: %v", err)
	}
	if got, _ := fs2.Get(KeyAccessToken); got != "tok-123" {
		t.Errorf("Get() after reopen = %q, want %q", got, "tok-123")
	}

	if err := fs.Delete(KeyAccessToken); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got, _ := fs.Get(KeyAccessToken); got != "" {
		t.Errorf("Get() after Delete = %q, want empty", got)
	}
	// Deleting an absent key is not an error.
	if err := fs.Delete(KeyAccessToken); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
}
