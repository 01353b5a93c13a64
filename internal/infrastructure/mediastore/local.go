// Package mediastore provides binary object storage with public-URL
// retrieval for uploaded images.
package mediastore

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store abstracts binary object storage for uploaded media.
type Store interface {
	// Save writes the object under the given key and returns its public URL.
	Save(key string, r io.Reader) (string, error)
}

// LocalStore stores media objects on the local filesystem and serves them
// under a configurable public base URL.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a LocalStore rooted at dir. The directory is
// created if it does not exist.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir returns the root directory of the store, for static file serving.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save writes the object under the given key and returns its public URL.
// Keys may contain forward slashes to namespace objects (e.g. "news/...").
func (s *LocalStore) Save(key string, r io.Reader) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" {
		return "", fmt.Errorf("invalid media key %q", key)
	}

	target := filepath.Join(s.dir, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media subdir: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("close media file: %w", err)
	}

	return s.baseURL + cleaned, nil
}
