package services

import (
	"editorial/internal/models"
	"errors"
	"strings"
)

var (
	// ErrUnauthorized means the permission check failed; nothing was mutated.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPrerequisiteMissing means the actor has no linked person record and
	// must complete profile setup before the action is meaningful.
	ErrPrerequisiteMissing = errors.New("personal information must be filled in first")
	// ErrNotFound means a referenced record does not resolve.
	ErrNotFound = errors.New("not found")
)

// ValidationError carries the structured per-field violations of a rejected
// state change. Everything created for the failed attempt has already been
// rolled back when it is returned.
type ValidationError struct {
	Violations []models.Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.String())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
