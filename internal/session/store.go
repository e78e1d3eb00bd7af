// Package session holds the process-wide API session token.
package session

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrNoSession indicates no token is currently stored.
var ErrNoSession = errors.New("no active session")

// Store keeps the session token read by every authenticated API call.
// It is written only at login and logout. When a file path is configured
// the token survives process restarts; nothing else is ever persisted.
type Store struct {
	mu    sync.RWMutex
	token string
	path  string
}

// NewStore constructs a Store. path may be empty for in-memory only.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads a previously saved token from disk, if any.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	s.mu.Lock()
	s.token = strings.TrimSpace(string(data))
	s.mu.Unlock()
	return nil
}

// Set stores the token after a successful login.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the token at logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	if s.path == "" {
		return nil
	}
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Token returns the current token.
func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoSession
	}
	return s.token, nil
}

// Active reports whether a token is present.
func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
