// Package store holds the persistence layer: the JSON-file-backed catalog and
// site content, and the in-memory order book. There is no database; every
// catalog write rewrites the whole backing file.
package store

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
)

// CookieStore is the authoritative catalog. Mutations do a full
// read-modify-write of the backing file; the mutex serializes writers so two
// concurrent admin edits cannot silently drop each other.
type CookieStore struct {
	mu   sync.Mutex
	path string
}

func NewCookieStore(path string) *CookieStore {
	return &CookieStore{path: path}
}

// cookieFile mirrors the on-disk document: { "cookies": [ ... ] }.
type cookieFile struct {
	Cookies []models.Cookie `json:"cookies"`
}

func (s *CookieStore) ListAll() ([]models.Cookie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *CookieStore) FindByID(id string) (models.Cookie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookies, err := s.read()
	if err != nil {
		return models.Cookie{}, err
	}
	for _, c := range cookies {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Cookie{}, apperr.NotFound("Cookie not found")
}

// Create assigns a fresh id, appends and persists the whole collection.
func (s *CookieStore) Create(cookie models.Cookie) (models.Cookie, error) {
	if cookie.Name == "" {
		return models.Cookie{}, apperr.Validation("name is required")
	}
	if cookie.Price <= 0 {
		return models.Cookie{}, apperr.Validation("price must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cookies, err := s.read()
	if err != nil {
		return models.Cookie{}, err
	}

	cookie.ID = uuid.NewString()
	cookies = append(cookies, cookie)
	if err := s.write(cookies); err != nil {
		return models.Cookie{}, err
	}
	return cookie, nil
}

// Update merges the provided fields onto the existing cookie; nil fields keep
// their prior value.
func (s *CookieStore) Update(id string, upd models.CookieUpdate) (models.Cookie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookies, err := s.read()
	if err != nil {
		return models.Cookie{}, err
	}

	for i := range cookies {
		if cookies[i].ID != id {
			continue
		}
		applyUpdate(&cookies[i], upd)
		if cookies[i].Price <= 0 {
			return models.Cookie{}, apperr.Validation("price must be greater than zero")
		}
		if err := s.write(cookies); err != nil {
			return models.Cookie{}, err
		}
		return cookies[i], nil
	}
	return models.Cookie{}, apperr.NotFound("Cookie not found")
}

// Delete removes the cookie. Carts and orders holding a snapshot of it keep
// working; a deleted id simply stops resolving.
func (s *CookieStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookies, err := s.read()
	if err != nil {
		return err
	}

	for i := range cookies {
		if cookies[i].ID == id {
			cookies = append(cookies[:i], cookies[i+1:]...)
			return s.write(cookies)
		}
	}
	return apperr.NotFound("Cookie not found")
}

func applyUpdate(c *models.Cookie, upd models.CookieUpdate) {
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Category != nil {
		c.Category = *upd.Category
	}
	if upd.Price != nil {
		c.Price = *upd.Price
	}
	if upd.Image != nil {
		c.Image = *upd.Image
	}
	if upd.Ingredients != nil {
		c.Ingredients = *upd.Ingredients
	}
	if upd.IsBestSeller != nil {
		c.IsBestSeller = *upd.IsBestSeller
	}
}

// read loads the whole collection. A missing file is an empty catalog, any
// other I/O failure is a storage error.
func (s *CookieStore) read() ([]models.Cookie, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.Cookie{}, nil
	}
	if err != nil {
		return nil, apperr.Storage("Failed to read catalog", err)
	}

	var file cookieFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperr.Storage("Failed to parse catalog", err)
	}
	if file.Cookies == nil {
		file.Cookies = []models.Cookie{}
	}
	return file.Cookies, nil
}

func (s *CookieStore) write(cookies []models.Cookie) error {
	data, err := json.MarshalIndent(cookieFile{Cookies: cookies}, "", "  ")
	if err != nil {
		return apperr.Storage("Failed to encode catalog", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return apperr.Storage("Failed to write catalog", err)
	}
	return nil
}
