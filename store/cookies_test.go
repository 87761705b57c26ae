package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
)

func newTestCookieStore(t *testing.T) *CookieStore {
	t.Helper()
	return NewCookieStore(filepath.Join(t.TempDir(), "cookies.json"))
}

func TestListAllEmptyWhenFileMissing(t *testing.T) {
	s := newTestCookieStore(t)

	cookies, err := s.ListAll()
	require.NoError(t, err)
	assert.Empty(t, cookies)
}

func TestCreateAssignsIDAndPersists(t *testing.T) {
	s := newTestCookieStore(t)

	created, err := s.Create(models.Cookie{Name: "Cookie Chocolat Noir", Price: 3.50})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// A fresh store over the same file sees the cookie
	again := NewCookieStore(s.path)
	found, err := again.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	s := newTestCookieStore(t)

	tests := []struct {
		name   string
		cookie models.Cookie
	}{
		{"missing name", models.Cookie{Price: 3.50}},
		{"zero price", models.Cookie{Name: "Cookie", Price: 0}},
		{"negative price", models.Cookie{Name: "Cookie", Price: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(tt.cookie)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestFindByIDUnknown(t *testing.T) {
	s := newTestCookieStore(t)

	_, err := s.FindByID("9999")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	s := newTestCookieStore(t)

	created, err := s.Create(models.Cookie{
		Name:        "Cookie Chocolat Noir",
		Description: "Aux pépites de chocolat noir",
		Category:    "Chocolat",
		Price:       3.50,
	})
	require.NoError(t, err)

	price := 3.80
	updated, err := s.Update(created.ID, models.CookieUpdate{Price: &price})
	require.NoError(t, err)

	assert.InDelta(t, 3.80, updated.Price, 0.001)
	// Unspecified fields keep their prior values
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Category, updated.Category)
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestCookieStore(t)

	name := "Cookie"
	_, err := s.Update("9999", models.CookieUpdate{Name: &name})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteRemovesEntry(t *testing.T) {
	s := newTestCookieStore(t)

	created, err := s.Create(models.Cookie{Name: "Cookie", Price: 3.50})
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))

	_, err = s.FindByID(created.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCorruptFileSurfacesStorageError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cookies.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewCookieStore(path)
	_, err := s.ListAll()
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindStorage))
}

// Concurrent writers serialize: no write may be silently lost.
func TestConcurrentCreates(t *testing.T) {
	s := newTestCookieStore(t)

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			_, err := s.Create(models.Cookie{Name: "Cookie", Price: 3.50})
			done <- err
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	cookies, err := s.ListAll()
	require.NoError(t, err)
	assert.Len(t, cookies, 10)
}
