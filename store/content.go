package store

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
)

// ContentStore round-trips the site content document as an opaque JSON blob.
type ContentStore struct {
	mu   sync.Mutex
	path string
}

func NewContentStore(path string) *ContentStore {
	return &ContentStore{path: path}
}

func (s *ContentStore) Get() (models.SiteContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Replace persists the whole document as sent by the admin panel.
func (s *ContentStore) Replace(content models.SiteContent) error {
	if content == nil {
		return apperr.Validation("content is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(content)
}

func (s *ContentStore) read() (models.SiteContent, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.SiteContent{}, nil
	}
	if err != nil {
		return nil, apperr.Storage("Failed to read site content", err)
	}

	var content models.SiteContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, apperr.Storage("Failed to parse site content", err)
	}
	return content, nil
}

func (s *ContentStore) write(content models.SiteContent) error {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return apperr.Storage("Failed to encode site content", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperr.Storage("Failed to write site content", err)
	}
	return nil
}
