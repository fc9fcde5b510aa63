package session

import (
	"context"

	"kazileo/internal/model"
)

// Repository defines data access for the user_sessions table.
type Repository interface {
	// GetByPhone fetches a session row by phone number. Returns a zero-value
	// session (PhoneNumber == "") when not found — not-found is not an error.
	GetByPhone(ctx context.Context, phoneNumber string) (model.UserSession, error)

	// Insert creates a new session row.
	Insert(ctx context.Context, sess model.UserSession) error

	// Update persists all mutated fields of an existing row, including the
	// nested jsonb documents, as a single statement.
	Update(ctx context.Context, sess model.UserSession) error
}
