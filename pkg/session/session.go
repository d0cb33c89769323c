// Package session holds the client's token pair and authenticated-user
// state, persisting tokens to a durable storage backend so a fresh
// process can reconstruct its authentication state from storage alone.
package session

import (
	"fmt"
	"sync"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

// Storage keys for the persisted token pair.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

// Storage is a durable string key/value backend for the token pair.
// Get returns "" with a nil error when the key is absent.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store owns the session state: the token pair, the derived
// authentication flag and the signed-in user summary. Every token
// mutation writes through to the backing Storage before returning.
type Store struct {
	mu           sync.RWMutex
	storage      Storage
	accessToken  string
	refreshToken string
	user         *domain.User
}

// NewStore creates a session store over the given backend, loading any
// previously persisted token pair.
func NewStore(storage Storage) (*Store, error) {
	access, err := storage.Get(KeyAccessToken)
	if err != nil {
		return nil, fmt.Errorf("session: load access token: %w", err)
	}
	refresh, err := storage.Get(KeyRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("session: load refresh token: %w", err)
	}
	return &Store{
		storage:      storage,
		accessToken:  access,
		refreshToken: refresh,
	}, nil
}

// SetSession stores a full session: both tokens and the user summary.
func (s *Store) SetSession(accessToken, refreshToken string, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(accessToken, refreshToken); err != nil {
		return err
	}
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	s.user = user
	return nil
}

// UpdateTokens replaces only the token pair, leaving the user untouched.
// Used after a refresh.
func (s *Store) UpdateTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(accessToken, refreshToken); err != nil {
		return err
	}
	s.accessToken = accessToken
	s.refreshToken = refreshToken
	return nil
}

// persist writes both tokens through to storage. Caller holds s.mu.
func (s *Store) persist(accessToken, refreshToken string) error {
	if err := s.storage.Set(KeyAccessToken, accessToken); err != nil {
		return fmt.Errorf("session: persist access token: %w", err)
	}
	if err := s.storage.Set(KeyRefreshToken, refreshToken); err != nil {
		return fmt.Errorf("session: persist refresh token: %w", err)
	}
	return nil
}

// Clear removes both tokens from storage and resets the store to
// unauthenticated with no user.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	if err := s.storage.Delete(KeyAccessToken); err != nil {
		return fmt.Errorf("session: clear access token: %w", err)
	}
	if err := s.storage.Delete(KeyRefreshToken); err != nil {
		return fmt.Errorf("session: clear refresh token: %w", err)
	}
	return nil
}

// IsAuthenticated is true iff an access token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

// AccessToken returns the current access token, or "" when signed out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, or "" when signed out.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// User returns the signed-in user summary, or nil before one is loaded.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser records the user summary without touching the tokens, e.g.
// after fetching /api/auth/me on startup.
func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}
