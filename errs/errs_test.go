package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "validation", Kind(NewMissingFieldError("name")))
	assert.Equal(t, "validation", Kind(NewInvalidFieldError("venue_id", "venue 3 does not exist")))
	assert.Equal(t, "not_found", Kind(NewNotFound("venue", 7)))
	assert.Equal(t, "persistence", Kind(NewPersistenceError("create", "venue", errors.New("disk full"))))
	assert.Equal(t, "persistence", Kind(errors.New("boom")))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFound("artist", 2)))
	assert.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("wrapped: %w", NewMissingFieldError("name"))))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
}

func TestNewPersistenceErrorClassifiesCause(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		check  func(error) bool
	}{
		{"unique", errors.New("UNIQUE constraint failed: venues.name"), http.StatusConflict, IsAlreadyExists},
		{"foreign key", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest, IsForeignKeyConstraintError},
		{"connection", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, IsPersistence},
		{"other", errors.New("disk I/O error"), http.StatusInternalServerError, IsPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPersistenceError("create", "venue", tt.cause)
			assert.Equal(t, tt.status, StatusCode(err))
			assert.True(t, tt.check(err))
		})
	}
}

func TestNewPersistenceErrorKeepsTypedCause(t *testing.T) {
	notFound := NewNotFound("venue", 9)

	err := NewPersistenceError("update", "venue", notFound)

	assert.Same(t, notFound, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsPersistence(err))
}

func TestApiErrMessages(t *testing.T) {
	err := NewMissingFieldError("name")
	assert.Equal(t, "name", err.Field)
	assert.Equal(t, "missing required field: validation failed: name is required", err.Error())
	assert.True(t, IsMissingRequiredField(err))
	assert.True(t, IsValidation(err))

	wrapped := &ApiErr{StatusCode: http.StatusInternalServerError, err: ErrPersistence, Cause: NewNotFound("show", 1)}
	assert.Equal(t, "persistence failure -> show not found: no show with id 1", wrapped.GetFullError())
}
