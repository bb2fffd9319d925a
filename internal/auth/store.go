// Package auth keeps the API bearer token between grantctl invocations.
package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists the token in a file readable only by the owner.
// An Override token, when set, takes precedence and is never written.
type FileStore struct {
	path     string
	override string

	mu sync.Mutex
}

// NewFileStore returns a store backed by path. override is typically the
// token from configuration or the environment.
func NewFileStore(path, override string) *FileStore {
	return &FileStore{path: path, override: strings.TrimSpace(override)}
}

// Path returns the token file location.
func (s *FileStore) Path() string { return s.path }

// Token returns the current token, or "" when none is stored.
func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.override != "" {
		return s.override, nil
	}

	// #nosec G304
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetToken writes token to the file with 0600 permissions.
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	s.override = ""
	return nil
}

// Clear removes the stored token and drops the override.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.override = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
