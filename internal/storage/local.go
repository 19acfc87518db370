package storage

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	CVDir      = "cv"
	ProfileDir = "profile"
)

// LocalStorage persists uploaded files under a base directory on disk.
// Paths returned to callers are relative (e.g. "uploads/cv/<name>") so the
// client can resolve them against the static file prefix.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates the upload subdirectories if they don't exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	for _, sub := range []string{CVDir, ProfileDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// UniqueName builds a server-side file name that won't collide with prior
// uploads: fieldname-timestamp-random + the original extension.
func UniqueName(field, originalName string) string {
	suffix := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
	return field + "-" + suffix + filepath.Ext(originalName)
}

// Save writes src into subdir under fileName and returns the relative path.
// An existing file with the same name is overwritten.
func (s *LocalStorage) Save(subdir, fileName string, src io.Reader) (string, error) {
	dst := filepath.Join(s.baseDir, subdir, fileName)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join("uploads", subdir, fileName)), nil
}

// Remove deletes the file a relative path (as returned by Save) points at.
// Removing a file that is already gone is not an error.
func (s *LocalStorage) Remove(relPath string) error {
	full := s.Resolve(relPath)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Resolve maps a stored relative path back to the absolute location on disk.
// Stored paths carry the "uploads/" prefix; it is stripped before joining.
func (s *LocalStorage) Resolve(relPath string) string {
	rel := strings.TrimPrefix(relPath, "uploads/")
	return filepath.Join(s.baseDir, filepath.FromSlash(rel))
}

// Dir returns the absolute directory for a subdir, for static serving.
func (s *LocalStorage) Dir(subdir string) string {
	return filepath.Join(s.baseDir, subdir)
}
