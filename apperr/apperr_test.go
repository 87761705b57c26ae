package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad quantity"), http.StatusBadRequest},
		{"not found", NotFound("no such cookie"), http.StatusNotFound},
		{"auth", Auth("who are you"), http.StatusUnauthorized},
		{"storage", Storage("disk broke", errors.New("EIO")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("adding item: %w", NotFound("no such cookie")), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestMessageNeverLeaksInternals(t *testing.T) {
	err := Storage("Failed to read catalog", errors.New("open /var/data/cookies.json: permission denied"))

	assert.Equal(t, "Failed to read catalog", Message(err))
	assert.Equal(t, "Internal server error", Message(errors.New("pq: connection refused")))
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("update: %w", Validation("nope"))

	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("boom"), KindValidation))
}
