// Package s3mock is the storage stand-in used when no AWS credentials
// are configured: objects live in memory and links point nowhere real.
package s3mock

import (
	"context"
	"sync"

	"github.com/happydoodle/core/internal/model"
)

type S3Storage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func New() *S3Storage {
	return &S3Storage{objects: make(map[string][]byte)}
}

func (s *S3Storage) Save(ctx context.Context, obj model.FileObject) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := "battles/" + obj.GetFilename()
	s.objects[key] = obj.GetContent()
	return key, nil
}

func (s *S3Storage) PublicURL(key string) string {
	return "https://happydoodle.local/" + key
}

// Object exposes stored bytes for tests.
func (s *S3Storage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[key]
	return b, ok
}
