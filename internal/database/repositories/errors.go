package repositories

import (
	"errors"
	"notekeeper/internal/database/models"
)

var ErrNoteNotFound = errors.New("note not found")

// ValidationError reports a create request the store refused.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var ErrContentMissing = &ValidationError{Message: "content missing"}

func validate(input models.NoteInput) error {
	if input.Content == "" {
		return ErrContentMissing
	}
	return nil
}
