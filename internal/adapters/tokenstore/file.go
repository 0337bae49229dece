package tokenstore

// Package tokenstore provides TokenStore adapters for the client. The
// backend is selected once at construction from configuration: file storage
// is durable across restarts, memory is scoped to the process, redis is
// shared between client instances.

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// FileStore persists the token in a single file under the user config
// directory. The token is opaque; the only protection is file permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed token store. When path is empty the
// token lives at <user config dir>/sports-arena/<key>.
func NewFileStore(path, key string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		if key == "" {
			key = "sports_arena_token"
		}
		path = filepath.Join(dir, "sports-arena", key)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(_ context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ports.ErrNoToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ports.ErrNoToken
	}
	return token, nil
}

func (s *FileStore) Remove(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

func (s *FileStore) Has(ctx context.Context) bool {
	_, err := s.Get(ctx)
	return err == nil
}
