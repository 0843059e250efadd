package session

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"aevonx/internal/domain"
)

// Store holds the process-wide auth state: the bearer token and the current
// user snapshot. It is constructed once at the composition root and injected
// everywhere a token is read; there is no package-level singleton.
//
// The token is persisted to a single file so a restart keeps the session;
// clearing the token removes the file entirely.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
	user  *domain.User
}

// NewStore loads any previously persisted token from path.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	s.token = strings.TrimSpace(string(raw))
	return s, nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores and persists the token. An empty token removes the file.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	if token == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove token file: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Store) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Clear drops both token and user; used on logout and on a failed session
// refresh.
func (s *Store) Clear() error {
	s.SetUser(nil)
	return s.SetToken("")
}
