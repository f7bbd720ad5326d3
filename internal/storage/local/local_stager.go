// Package local stages uploaded images on the local filesystem. Buckets map
// to subdirectories of the root and keys to relative paths inside them.
package local

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"docscan/internal/port"
)

// Stager implements port.ObjectStorage and port.HealthChecker.
type Stager struct {
	root string
}

// NewStager creates the root directory if needed.
func NewStager(root string) (*Stager, error) {
	if root == "" {
		return nil, errors.New("local staging directory is empty")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	return &Stager{root: root}, nil
}

func (s *Stager) path(bucket, key string) (string, error) {
	p := filepath.Join(s.root, bucket, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, p)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid staging key %q", key)
	}
	return p, nil
}

func (s *Stager) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(input.Bucket, input.Key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return nil, fmt.Errorf("local upload: %w", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return nil, fmt.Errorf("local upload: %w", err)
	}
	hash := sha256.New()
	if _, err := io.Copy(io.MultiWriter(f, hash), input.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(p)
		return nil, fmt.Errorf("local upload write: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("local upload close: %w", err)
	}

	return &port.UploadOutput{
		Location: p,
		ETag:     `"` + hex.EncodeToString(hash.Sum(nil)) + `"`,
	}, nil
}

func (s *Stager) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(bucket, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("local download: %w", err)
	}
	return data, nil
}

// Delete removes the object. Deleting a missing object is not an error.
func (s *Stager) Delete(_ context.Context, bucket, key string) error {
	p, err := s.path(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("local delete: %w", err)
	}
	return nil
}

// Check reports whether the staging root is still a directory.
func (s *Stager) Check(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("staging directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("staging path %s is not a directory", s.root)
	}
	return nil
}
